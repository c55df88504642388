package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingDetail is one employee/month billing row in the team_report_details
// collection. ConvertedVND, TotalPayment and PercentageRatio are derived on
// every write from the base fields; they are stored so that list views and
// exports never recompute.
type BillingDetail struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeCode  string             `json:"employee_code" bson:"employee_code" validate:"required"`
	EmployeeName  string             `json:"employee_name" bson:"employee_name"`
	ProjectID     string             `json:"project_id" bson:"project_id"`
	Team          string             `json:"team" bson:"team" validate:"required"`
	Month         int                `json:"month" bson:"month" validate:"required,min=1,max=12"`
	Year          int                `json:"year" bson:"year" validate:"required"`
	BillableHours float64            `json:"billable_hours" bson:"billable_hours"`
	Rate          FlexNumber         `json:"rate" bson:"rate"`
	FxRate        float64            `json:"fx_rate" bson:"fx_rate"`
	Percentage    FlexNumber         `json:"percentage" bson:"percentage"`
	PackageVND    float64            `json:"package_vnd" bson:"package_vnd"`
	HasSalary     bool               `json:"has_salary" bson:"has_salary"`

	CompanyPayment float64 `json:"company_payment" bson:"company_payment"`
	Salary13       float64 `json:"salary_13" bson:"salary_13"`

	StorageUSD  float64 `json:"storage_usd" bson:"storage_usd"`
	StorageUSDT float64 `json:"storage_usdt" bson:"storage_usdt"`

	Notes    string `json:"notes" bson:"notes"`
	IsLocked bool   `json:"is_locked" bson:"is_locked"`

	ConvertedVND    float64 `json:"converted_vnd" bson:"converted_vnd"`
	TotalPayment    float64 `json:"total_payment" bson:"total_payment"`
	PercentageRatio float64 `json:"percentage_ratio" bson:"percentage_ratio"`

	Metadata Metadata `json:"metadata" bson:"metadata"`
}

// Metadata is the audit block embedded in every mutable document.
type Metadata struct {
	CreatedBy string    `json:"created_by" bson:"created_by"`
	UpdatedBy string    `json:"updated_by" bson:"updated_by"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
