package models

import "time"

// Payment is a strictly additive ledger entry. Received means money came in
// from the customer (their balance goes down); otherwise money was paid out
// to the customer (their balance goes up).
type Payment struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"not null;index"`
	Date       string `gorm:"not null"` // ISO YYYY-MM-DD
	Amount     float64 `gorm:"not null"`
	Received   bool    `gorm:"not null"`
	CreatedAt  time.Time
}
