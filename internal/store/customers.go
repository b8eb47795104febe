package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rohansood98/ggs-accounting/internal/models"
)

// CustomerPatch carries the optional fields of a partial customer update.
// Only present (non-nil) fields end up in the UPDATE statement.
type CustomerPatch struct {
	Name        *string
	ContactInfo *string
	Type        *string
}

// AddCustomer creates a counterparty. The type defaults to Buyer.
func (s *Store) AddCustomer(name, contactInfo, customerType string) (uint, error) {
	if customerType == "" {
		customerType = models.CustomerBuyer
	}
	c := models.Customer{Name: name, ContactInfo: contactInfo, Type: customerType}
	if err := s.db.Create(&c).Error; err != nil {
		return 0, fmt.Errorf("add customer: %w", err)
	}
	return c.ID, nil
}

func (s *Store) UpdateCustomer(id uint, p CustomerPatch) error {
	updates := map[string]any{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.ContactInfo != nil {
		updates["contact_info"] = *p.ContactInfo
	}
	if p.Type != nil {
		updates["type"] = *p.Type
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.db.Model(&models.Customer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// UpdateCustomerBalance adjusts the running balance by delta, which may be
// negative. Invoice posting and payment recording are the only callers.
func (s *Store) UpdateCustomerBalance(id uint, delta float64) error {
	err := s.db.Model(&models.Customer{}).Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
	if err != nil {
		return fmt.Errorf("update customer balance: %w", err)
	}
	return nil
}

func (s *Store) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("name").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}
	return customers, nil
}

func (s *Store) GetCustomersByType(customerType string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Where("type = ?", customerType).Order("name").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("fetch customers by type: %w", err)
	}
	return customers, nil
}
