package models

import "time"

// Invoice types
const (
	InvoiceSale     = "Sale"
	InvoicePurchase = "Purchase"
)

// Invoicing models. Invoices are immutable once created: there is no update
// or delete operation on them anywhere in the application.
type Invoice struct {
	ID          uint   `gorm:"primaryKey"`
	Date        string `gorm:"not null;index"` // ISO YYYY-MM-DD
	Type        string `gorm:"not null"`       // Sale, Purchase
	CustomerID  uint   `gorm:"not null;index"`
	Subtotal    float64 `gorm:"not null"`
	TotalAmount float64 `gorm:"not null"`
	IsCredit    bool    `gorm:"not null;default:false"`
	Items       []InvoiceItem `gorm:"foreignKey:InvoiceID"`
	CreatedAt   time.Time
}

type InvoiceItem struct {
	ID         uint  `gorm:"primaryKey"`
	InvoiceID  uint  `gorm:"not null;index"`
	ItemID     uint  `gorm:"not null"`
	CustomerID uint  `gorm:"not null"`
	SourceID   *uint // supplying customer on Sale lines, nil on Purchase lines
	Quantity   float64 `gorm:"not null"`
	UnitPrice  float64 `gorm:"not null"`
	LineTotal  float64 `gorm:"not null"`
}

// SaleTag and PurchaseTag are type-marker rows keyed by invoice id, kept from
// the ledger schema. They carry no data of their own.
type SaleTag struct {
	InvoiceID uint `gorm:"primaryKey"`
}

func (SaleTag) TableName() string { return "sales" }

type PurchaseTag struct {
	InvoiceID uint `gorm:"primaryKey"`
}

func (PurchaseTag) TableName() string { return "purchases" }
