package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rohansood98/ggs-accounting/internal/models"
)

// InvoiceLine is one resolved line of an invoice about to be posted. Item and
// price resolution has already happened; see services.InvoiceService.
type InvoiceLine struct {
	ItemID     uint
	CustomerID uint
	SourceID   *uint
	Quantity   float64
	UnitPrice  float64
}

// CreateInvoice posts an invoice: header, lines, the Sale/Purchase tag row,
// the credit balance delta and every inventory lot adjustment run inside one
// transaction, so a failure on any line rolls the whole posting back.
//
// Subtotal and total are both the plain sum of quantity x unit price; no tax
// or discount layer exists. On credit terms a Sale raises the buyer's balance
// by the unpaid remainder and a Purchase lowers the supplier's by the same.
func (s *Store) CreateInvoice(date, invType string, customerID uint, lines []InvoiceLine, isCredit bool, amountPaid float64) (uint, error) {
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.Quantity * l.UnitPrice
	}

	var invID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		inv := models.Invoice{
			Date:        date,
			Type:        invType,
			CustomerID:  customerID,
			Subtotal:    subtotal,
			TotalAmount: subtotal,
			IsCredit:    isCredit,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		invID = inv.ID

		for _, l := range lines {
			row := models.InvoiceItem{
				InvoiceID:  inv.ID,
				ItemID:     l.ItemID,
				CustomerID: l.CustomerID,
				SourceID:   l.SourceID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				LineTotal:  l.Quantity * l.UnitPrice,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		switch invType {
		case models.InvoiceSale:
			if err := tx.Create(&models.SaleTag{InvoiceID: inv.ID}).Error; err != nil {
				return err
			}
		case models.InvoicePurchase:
			if err := tx.Create(&models.PurchaseTag{InvoiceID: inv.ID}).Error; err != nil {
				return err
			}
		}

		if isCredit && customerID != 0 {
			delta := subtotal - amountPaid
			if invType == models.InvoicePurchase {
				delta = -delta
			}
			err := tx.Model(&models.Customer{}).Where("id = ?", customerID).
				Update("balance", gorm.Expr("balance + ?", delta)).Error
			if err != nil {
				return err
			}
		}

		for _, l := range lines {
			lotCustomer := l.CustomerID
			change := l.Quantity
			if invType == models.InvoiceSale {
				if l.SourceID == nil {
					return ErrMissingSource
				}
				lotCustomer = *l.SourceID
				change = -l.Quantity
			}
			if err := applyStock(tx, l.ItemID, lotCustomer, l.UnitPrice, change); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create invoice: %w", err)
	}
	return invID, nil
}

// GetInvoices returns all invoices, or those whose date falls between start
// and end (inclusive) when both bounds are given.
func (s *Store) GetInvoices(startDate, endDate string) ([]models.Invoice, error) {
	q := s.db.Order("date, id")
	if startDate != "" && endDate != "" {
		q = q.Where("date BETWEEN ? AND ?", startDate, endDate)
	}
	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}
	return invoices, nil
}

func (s *Store) GetInvoiceItems(invoiceID uint) ([]models.InvoiceItem, error) {
	var items []models.InvoiceItem
	if err := s.db.Where("invoice_id = ?", invoiceID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetch invoice items: %w", err)
	}
	return items, nil
}
