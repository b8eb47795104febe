package reporting

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rohansood98/ggs-accounting/internal/db"
	"github.com/rohansood98/ggs-accounting/internal/models"
	"github.com/rohansood98/ggs-accounting/internal/store"
)

func setupReporting(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(db.Models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(conn)
}

func TestCustomerBalancesClassification(t *testing.T) {
	st := setupReporting(t)
	owing, err := st.AddCustomer("Owing", "", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	owed, err := st.AddCustomer("Owed", "", models.CustomerGrower)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := st.AddCustomer("Square", "", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := st.UpdateCustomerBalance(owing, 50); err != nil {
		t.Fatalf("balance: %v", err)
	}
	if err := st.UpdateCustomerBalance(owed, -30); err != nil {
		t.Fatalf("balance: %v", err)
	}

	rows, err := CustomerBalances(st)
	if err != nil {
		t.Fatalf("balances: %v", err)
	}
	byName := map[string]BalanceRow{}
	for _, r := range rows {
		byName[r.Name] = r
	}
	if byName["Owing"].Status != StatusReceivable {
		t.Errorf("positive balance should be receivable, got %q", byName["Owing"].Status)
	}
	if byName["Owed"].Status != StatusPayable {
		t.Errorf("negative balance should be payable, got %q", byName["Owed"].Status)
	}
	if byName["Square"].Status != StatusSettled {
		t.Errorf("zero balance should be settled, got %q", byName["Square"].Status)
	}
}

func TestInventoryValues(t *testing.T) {
	st := setupReporting(t)
	growerID, err := st.AddCustomer("Grower", "", models.CustomerGrower)
	if err != nil {
		t.Fatalf("grower: %v", err)
	}
	appleID, err := st.AddItem("Apple", "APL", 10.0, 5, growerID)
	if err != nil {
		t.Fatalf("apple: %v", err)
	}
	if _, err := st.AddItem("Pear", "PER", 4.0, 10, growerID); err != nil {
		t.Fatalf("pear: %v", err)
	}
	// second lot for apples at a different price
	if err := st.UpdateItemStock(appleID, growerID, 12.0, 2); err != nil {
		t.Fatalf("lot: %v", err)
	}

	rows, total, err := InventoryValues(st, InventoryFilter{})
	if err != nil {
		t.Fatalf("values: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 lots, got %d", len(rows))
	}
	// 5x10 + 10x4 + 2x12
	if total != 114 {
		t.Fatalf("expected grand total 114, got %v", total)
	}

	rows, total, err = InventoryValues(st, InventoryFilter{ItemID: &appleID})
	if err != nil {
		t.Fatalf("filtered values: %v", err)
	}
	if len(rows) != 2 || total != 74 {
		t.Fatalf("expected apple lots worth 74, got %d rows, total %v", len(rows), total)
	}
	for _, r := range rows {
		if r.Name != "Apple" {
			t.Fatalf("filter leaked other items: %+v", r)
		}
		if r.Value != r.Stock*r.Price {
			t.Fatalf("row value mismatch: %+v", r)
		}
	}
}

func TestBuiltinQueriesExecute(t *testing.T) {
	st := setupReporting(t)
	for name, sql := range BuiltinQueries {
		if _, _, err := RunQuery(st, sql); err != nil {
			t.Errorf("built-in %q failed: %v", name, err)
		}
	}
}

func TestRunQueryStaysReadOnly(t *testing.T) {
	st := setupReporting(t)
	if _, _, err := RunQuery(st, "DELETE FROM customers"); !errors.Is(err, store.ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
}
