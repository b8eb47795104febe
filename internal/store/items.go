package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rohansood98/ggs-accounting/internal/models"
)

// ItemStock is one materialized row of the item x lot listing.
type ItemStock struct {
	ItemID       uint
	Name         string
	Code         string
	CustomerID   uint
	PriceExclTax float64
	StockQty     float64
}

// ItemPatch carries the optional fields of a partial item/lot update. Name
// and Code apply to the catalog row; PriceExclTax and StockQty apply to the
// addressed lot.
type ItemPatch struct {
	Name         *string
	Code         *string
	PriceExclTax *float64
	StockQty     *float64
}

// AddItem creates the catalog entry (reusing an existing one with the same
// name) together with the opening inventory lot for the supplying customer.
func (s *Store) AddItem(name, code string, priceExclTax, stockQty float64, customerID uint) (uint, error) {
	var itemID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		err := tx.Where("name = ?", name).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.Item{Name: name, Code: code}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		itemID = item.ID
		return applyStock(tx, item.ID, customerID, priceExclTax, stockQty)
	})
	if err != nil {
		return 0, fmt.Errorf("add item: %w", err)
	}
	return itemID, nil
}

func (s *Store) UpdateItem(itemID, customerID uint, priceExclTax float64, p ItemPatch) error {
	itemCols := map[string]any{}
	if p.Name != nil {
		itemCols["name"] = *p.Name
	}
	if p.Code != nil {
		itemCols["code"] = *p.Code
	}
	lotCols := map[string]any{}
	if p.PriceExclTax != nil {
		lotCols["price_excl_tax"] = *p.PriceExclTax
	}
	if p.StockQty != nil {
		lotCols["stock_qty"] = *p.StockQty
	}
	if len(itemCols) == 0 && len(lotCols) == 0 {
		return nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(itemCols) > 0 {
			if err := tx.Model(&models.Item{}).Where("id = ?", itemID).Updates(itemCols).Error; err != nil {
				return err
			}
		}
		if len(lotCols) > 0 {
			err := tx.Model(&models.InventoryLot{}).
				Where("item_id = ? AND customer_id = ? AND price_excl_tax = ?", itemID, customerID, priceExclTax).
				Updates(lotCols).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// DeleteItem removes the customer's lots of the item, and the catalog entry
// itself once no lots from any customer remain.
func (s *Store) DeleteItem(itemID, customerID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("item_id = ? AND customer_id = ?", itemID, customerID).
			Delete(&models.InventoryLot{}).Error
		if err != nil {
			return err
		}
		var remaining int64
		if err := tx.Model(&models.InventoryLot{}).Where("item_id = ?", itemID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Delete(&models.Item{}, itemID).Error
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// GetItems returns the catalog entries alone, without stock.
func (s *Store) GetItems() ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	return items, nil
}

// FindItemByName returns the catalog entry or nil when the name is unknown.
func (s *Store) FindItemByName(name string) (*models.Item, error) {
	var item models.Item
	err := s.db.Where("name = ?", name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch item: %w", err)
	}
	return &item, nil
}

// GetAllItems returns the materialized item x lot listing.
func (s *Store) GetAllItems() ([]ItemStock, error) {
	return s.ListInventory(nil, nil)
}

// ListInventory returns lot rows joined with their catalog entries,
// optionally filtered by item and/or supplying customer.
func (s *Store) ListInventory(itemID, customerID *uint) ([]ItemStock, error) {
	q := s.db.Table("inventory").
		Select("inventory.item_id, items.name, items.code, inventory.customer_id, inventory.price_excl_tax, inventory.stock_qty").
		Joins("JOIN items ON items.id = inventory.item_id").
		Order("items.name, inventory.customer_id, inventory.price_excl_tax")
	if itemID != nil {
		q = q.Where("inventory.item_id = ?", *itemID)
	}
	if customerID != nil {
		q = q.Where("inventory.customer_id = ?", *customerID)
	}
	var rows []ItemStock
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch inventory: %w", err)
	}
	return rows, nil
}

// UpdateItemStock adjusts stock for the (item, customer, price) lot by
// change, which may be negative. See applyStock for the lot rules.
func (s *Store) UpdateItemStock(itemID, customerID uint, priceExclTax, change float64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyStock(tx, itemID, customerID, priceExclTax, change)
	})
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	return nil
}

// LatestLotPrice returns the price of the most recent lot for the item and
// customer, or ErrNoLot when the pair has no inventory at all.
func (s *Store) LatestLotPrice(itemID, customerID uint) (float64, error) {
	var lot models.InventoryLot
	err := s.db.Where("item_id = ? AND customer_id = ?", itemID, customerID).
		Order("id DESC").First(&lot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNoLot
	}
	if err != nil {
		return 0, fmt.Errorf("fetch latest lot: %w", err)
	}
	return lot.PriceExclTax, nil
}

// applyStock implements lot costing. An exact (item, customer, price) match
// is adjusted in place. Without a match, a positive change opens a new lot at
// that price; a negative change falls back to the most recent lot for the
// item and customer, and fails with ErrNoLot when there is none.
func applyStock(tx *gorm.DB, itemID, customerID uint, priceExclTax, change float64) error {
	var lot models.InventoryLot
	err := tx.Where("item_id = ? AND customer_id = ? AND price_excl_tax = ?", itemID, customerID, priceExclTax).
		First(&lot).Error
	if err == nil {
		return tx.Model(&lot).Update("stock_qty", gorm.Expr("stock_qty + ?", change)).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if change >= 0 {
		return tx.Create(&models.InventoryLot{
			ItemID:       itemID,
			CustomerID:   customerID,
			PriceExclTax: priceExclTax,
			StockQty:     change,
		}).Error
	}
	err = tx.Where("item_id = ? AND customer_id = ?", itemID, customerID).
		Order("id DESC").First(&lot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoLot
	}
	if err != nil {
		return err
	}
	return tx.Model(&lot).Update("stock_qty", gorm.Expr("stock_qty + ?", change)).Error
}
