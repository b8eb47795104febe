package models

import "time"

// Item is a catalog entry, independent of any supplier or price.
type Item struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null"`
	Code      string `gorm:"size:40;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryLot tracks the stock of one item from one supplier at one unit
// price. Stock bought at a different price lives in its own lot row; lots are
// never averaged together.
type InventoryLot struct {
	ID           uint    `gorm:"primaryKey"`
	ItemID       uint    `gorm:"not null;index:idx_lot,unique,priority:1"`
	CustomerID   uint    `gorm:"not null;index:idx_lot,unique,priority:2"`
	PriceExclTax float64 `gorm:"not null;index:idx_lot,unique,priority:3"`
	StockQty     float64 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (InventoryLot) TableName() string { return "inventory" }
