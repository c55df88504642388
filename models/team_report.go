package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TeamReport is the stored monthly aggregate of one team's billing rows.
// Deleting a report does not cascade to its detail rows; each collection is
// cleaned up independently.
type TeamReport struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Team  string             `json:"team" bson:"team" validate:"required"`
	Month int                `json:"month" bson:"month" validate:"required,min=1,max=12"`
	Year  int                `json:"year" bson:"year" validate:"required"`

	FinalBill float64 `json:"final_bill" bson:"final_bill"`
	FinalPay  float64 `json:"final_pay" bson:"final_pay"`
	FinalSave float64 `json:"final_save" bson:"final_save"`
	FinalEarn float64 `json:"final_earn" bson:"final_earn"`

	StorageUSD  float64 `json:"storage_usd" bson:"storage_usd"`
	StorageUSDT float64 `json:"storage_usdt" bson:"storage_usdt"`

	Metadata Metadata `json:"metadata" bson:"metadata"`
}
