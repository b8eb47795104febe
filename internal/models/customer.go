package models

import "time"

// Customer types
const (
	CustomerGrower = "Grower"
	CustomerBuyer  = "Buyer"
	CustomerOther  = "Other"
)

// Customer is a counterparty: a grower supplying produce, a buyer, or both.
// Balance sign convention: positive means the customer owes us (receivable),
// negative means we owe the customer (payable). The balance is only ever
// mutated by invoice posting and payment recording.
type Customer struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;index"`
	ContactInfo string
	Type        string  `gorm:"not null;default:'Buyer'"`
	Balance     float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
