package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rohansood98/ggs-accounting/internal/models"
)

// RecordPayment appends a payment ledger entry and adjusts the customer's
// balance in the same transaction. Money received lowers the balance (the
// customer owes less); money paid out raises it.
func (s *Store) RecordPayment(customerID uint, amount float64, date string, received bool) (uint, error) {
	var paymentID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		p := models.Payment{CustomerID: customerID, Amount: amount, Date: date, Received: received}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		paymentID = p.ID
		delta := amount
		if received {
			delta = -amount
		}
		return tx.Model(&models.Customer{}).Where("id = ?", customerID).
			Update("balance", gorm.Expr("balance + ?", delta)).Error
	})
	if err != nil {
		return 0, fmt.Errorf("record payment: %w", err)
	}
	return paymentID, nil
}

// GetPayments returns the payment ledger, scoped to one customer when
// customerID is non-zero.
func (s *Store) GetPayments(customerID uint) ([]models.Payment, error) {
	q := s.db.Order("date, id")
	if customerID != 0 {
		q = q.Where("customer_id = ?", customerID)
	}
	var payments []models.Payment
	if err := q.Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("fetch payments: %w", err)
	}
	return payments, nil
}
