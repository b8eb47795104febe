package printing

import (
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rohansood98/ggs-accounting/internal/db"
	"github.com/rohansood98/ggs-accounting/internal/models"
	"github.com/rohansood98/ggs-accounting/internal/store"
)

func setupPrinter(t *testing.T) (*ReceiptPrinter, *store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(db.Models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	st := store.New(conn)
	return NewReceiptPrinter(st), st
}

func seedInvoices(t *testing.T, st *store.Store) (buyerID uint) {
	t.Helper()
	growerID, err := st.AddCustomer("Grower", "", models.CustomerGrower)
	if err != nil {
		t.Fatalf("grower: %v", err)
	}
	itemID, err := st.AddItem("Apple", "APL", 10.0, 50, growerID)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	buyerID, err = st.AddCustomer("Buyer", "", models.CustomerBuyer)
	if err != nil {
		t.Fatalf("buyer: %v", err)
	}
	sale := []store.InvoiceLine{{ItemID: itemID, CustomerID: buyerID, SourceID: &growerID, Quantity: 2, UnitPrice: 10}}
	if _, err := st.CreateInvoice("2025-01-10", models.InvoiceSale, buyerID, sale, false, 20); err != nil {
		t.Fatalf("sale: %v", err)
	}
	purchase := []store.InvoiceLine{{ItemID: itemID, CustomerID: growerID, Quantity: 5, UnitPrice: 9}}
	if _, err := st.CreateInvoice("2025-02-10", models.InvoicePurchase, growerID, purchase, false, 45); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	return buyerID
}

func TestFetchInvoicesFilters(t *testing.T) {
	p, st := setupPrinter(t)
	buyerID := seedInvoices(t, st)

	all, err := p.FetchInvoices("", "", 0, "")
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(all))
	}

	sales, err := p.FetchInvoices("", "", 0, models.InvoiceSale)
	if err != nil {
		t.Fatalf("fetch sales: %v", err)
	}
	if len(sales) != 1 || sales[0].Type != models.InvoiceSale {
		t.Fatalf("type filter failed: %+v", sales)
	}

	mine, err := p.FetchInvoices("", "", buyerID, "")
	if err != nil {
		t.Fatalf("fetch by customer: %v", err)
	}
	if len(mine) != 1 || mine[0].CustomerID != buyerID {
		t.Fatalf("customer filter failed: %+v", mine)
	}

	ranged, err := p.FetchInvoices("2025-02-01", "2025-02-28", 0, "")
	if err != nil {
		t.Fatalf("fetch range: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Date != "2025-02-10" {
		t.Fatalf("date filter failed: %+v", ranged)
	}
}

func TestPrintSummaryWritesPDF(t *testing.T) {
	p, st := setupPrinter(t)
	seedInvoices(t, st)

	invoices, err := p.FetchInvoices("", "", 0, "")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	path, err := p.PrintSummary(invoices)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	defer os.Remove(path)
	assertNonEmptyPDF(t, path)
}

func TestPrintDetailedWritesPDF(t *testing.T) {
	p, st := setupPrinter(t)
	seedInvoices(t, st)

	invoices, err := p.FetchInvoices("", "", 0, "")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	path, err := p.PrintDetailed(invoices)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	defer os.Remove(path)
	assertNonEmptyPDF(t, path)
}

func assertNonEmptyPDF(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat pdf: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("pdf is empty")
	}
}
