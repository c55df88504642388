package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SalaryDetail is one employee's salary row for a month, keyed by
// (employee_code, month, year). Completed sheets cannot be deleted.
type SalaryDetail struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeCode   string             `json:"employee_code" bson:"employee_code" validate:"required"`
	Month          int                `json:"month" bson:"month" validate:"required,min=1,max=12"`
	Year           int                `json:"year" bson:"year" validate:"required"`
	BasicSalary    float64            `json:"basic_salary" bson:"basic_salary"`
	KPI            float64            `json:"kpi" bson:"kpi"`
	CompanyPayment float64            `json:"company_payment" bson:"company_payment"`
	Salary13       float64            `json:"salary_13" bson:"salary_13"`
	IsCompleted    bool               `json:"is_completed" bson:"is_completed"`

	// SalaryCoefficient is derived from KPI and BasicSalary on every write,
	// never accepted from the client.
	SalaryCoefficient float64  `json:"salary_coefficient" bson:"salary_coefficient"`
	Metadata          Metadata `json:"metadata" bson:"metadata"`
}
