package reporting

import (
	"github.com/rohansood98/ggs-accounting/internal/store"
)

// Balance statuses
const (
	StatusReceivable = "Receivable"
	StatusPayable    = "Payable"
	StatusSettled    = "Settled"
)

// BuiltinQueries are the canned analytical reports offered by the console.
// They are plain read-only SQL and run through the same escape hatch as
// user-entered queries.
var BuiltinQueries = map[string]string{
	"Outstanding Balances": "SELECT name, balance FROM customers WHERE balance <> 0",
	"Top Selling Items": "SELECT items.name, invoice_items.source_id, SUM(invoice_items.quantity) AS total_sold\n" +
		"FROM invoice_items\n" +
		"JOIN invoices ON invoices.id = invoice_items.invoice_id\n" +
		"JOIN items ON items.id = invoice_items.item_id\n" +
		"WHERE invoices.date >= date('now', '-30 days') AND invoices.type = 'Sale'\n" +
		"GROUP BY items.name, invoice_items.source_id\n" +
		"ORDER BY total_sold DESC",
	"Low Stock Items": "SELECT items.name, inventory.customer_id, inventory.stock_qty\n" +
		"FROM inventory JOIN items ON items.id = inventory.item_id\n" +
		"WHERE inventory.stock_qty < 10",
	"Recent Sales": "SELECT date, total_amount FROM invoices\n" +
		"WHERE type = 'Sale'\n" +
		"ORDER BY date DESC LIMIT 10",
	"High Value Customers": "SELECT customers.name, SUM(invoices.total_amount) AS total_spent\n" +
		"FROM invoices JOIN customers ON invoices.customer_id = customers.id\n" +
		"WHERE invoices.type = 'Sale'\n" +
		"GROUP BY customers.name\n" +
		"ORDER BY total_spent DESC",
}

// RunQuery executes SQL through the read-only escape hatch.
func RunQuery(st *store.Store, sql string) ([]string, [][]any, error) {
	return st.RunRawQuery(sql)
}

// BalanceRow classifies one customer's balance by sign.
type BalanceRow struct {
	Name    string
	Balance float64
	Status  string
}

// CustomerBalances returns every customer with a Receivable / Payable /
// Settled classification.
func CustomerBalances(st *store.Store) ([]BalanceRow, error) {
	customers, err := st.GetAllCustomers()
	if err != nil {
		return nil, err
	}
	rows := make([]BalanceRow, 0, len(customers))
	for _, c := range customers {
		status := StatusSettled
		switch {
		case c.Balance > 0:
			status = StatusReceivable
		case c.Balance < 0:
			status = StatusPayable
		}
		rows = append(rows, BalanceRow{Name: c.Name, Balance: c.Balance, Status: status})
	}
	return rows, nil
}

// InventoryRow is one valued lot.
type InventoryRow struct {
	ItemID     uint
	Name       string
	CustomerID uint
	Price      float64
	Stock      float64
	Value      float64
}

// InventoryFilter narrows the valuation to one item and/or one supplying
// customer. Nil fields mean no filter.
type InventoryFilter struct {
	ItemID     *uint
	CustomerID *uint
}

// InventoryValues values each lot at its stored price and returns the rows
// with the grand total. Every call re-queries the store; nothing is cached.
func InventoryValues(st *store.Store, f InventoryFilter) ([]InventoryRow, float64, error) {
	lots, err := st.ListInventory(f.ItemID, f.CustomerID)
	if err != nil {
		return nil, 0, err
	}
	total := 0.0
	rows := make([]InventoryRow, 0, len(lots))
	for _, lot := range lots {
		value := lot.StockQty * lot.PriceExclTax
		total += value
		rows = append(rows, InventoryRow{
			ItemID:     lot.ItemID,
			Name:       lot.Name,
			CustomerID: lot.CustomerID,
			Price:      lot.PriceExclTax,
			Stock:      lot.StockQty,
			Value:      value,
		})
	}
	return rows, total, nil
}
