package store

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rohansood98/ggs-accounting/internal/db"
	"github.com/rohansood98/ggs-accounting/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(db.Models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(conn)
}

// seed a grower with an Apple lot at 10.0 x 5 and a plain buyer
func seedGrowerAndBuyer(t *testing.T, s *Store) (growerID, itemID, buyerID uint) {
	t.Helper()
	growerID, err := s.AddCustomer("Grower", "", models.CustomerGrower)
	if err != nil {
		t.Fatalf("grower: %v", err)
	}
	itemID, err = s.AddItem("Apple", "APL", 10.0, 5, growerID)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	buyerID, err = s.AddCustomer("Buyer", "", "")
	if err != nil {
		t.Fatalf("buyer: %v", err)
	}
	return growerID, itemID, buyerID
}

func lotRows(t *testing.T, s *Store, itemID, customerID uint) []models.InventoryLot {
	t.Helper()
	var lots []models.InventoryLot
	err := s.db.Where("item_id = ? AND customer_id = ?", itemID, customerID).
		Order("price_excl_tax").Find(&lots).Error
	if err != nil {
		t.Fatalf("lots: %v", err)
	}
	return lots
}

func customerBalance(t *testing.T, s *Store, id uint) float64 {
	t.Helper()
	var c models.Customer
	if err := s.db.First(&c, id).Error; err != nil {
		t.Fatalf("customer: %v", err)
	}
	return c.Balance
}
