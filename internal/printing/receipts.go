package printing

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rohansood98/ggs-accounting/internal/models"
	"github.com/rohansood98/ggs-accounting/internal/store"
)

// ReceiptPrinter generates simple PDF invoice summaries and detail listings.
// Documents are written to a temporary path; Open hands them to the
// platform's default viewer.
type ReceiptPrinter struct {
	store *store.Store
}

func NewReceiptPrinter(st *store.Store) *ReceiptPrinter { return &ReceiptPrinter{store: st} }

// FetchInvoices lists invoices filtered by date range, counterparty and
// type. Zero values mean no filter.
func (p *ReceiptPrinter) FetchInvoices(startDate, endDate string, customerID uint, invType string) ([]models.Invoice, error) {
	invoices, err := p.store.GetInvoices(startDate, endDate)
	if err != nil {
		return nil, err
	}
	result := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if customerID != 0 && inv.CustomerID != customerID {
			continue
		}
		if invType != "" && inv.Type != invType {
			continue
		}
		result = append(result, inv)
	}
	return result, nil
}

// PrintSummary generates a one-table summary PDF and returns its path.
func (p *ReceiptPrinter) PrintSummary(invoices []models.Invoice) (string, error) {
	names, err := p.customerNames()
	if err != nil {
		return "", err
	}
	m := newDocument()
	m.AddRow(14, text.NewCol(12, "Invoice Summary", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(8,
		text.NewCol(3, "Date", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, "Invoice", props.Text{Style: fontstyle.Bold}),
		text.NewCol(5, "Customer", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, inv := range invoices {
		m.AddRow(6,
			text.NewCol(3, inv.Date),
			text.NewCol(2, fmt.Sprintf("%d", inv.ID)),
			text.NewCol(5, names[inv.CustomerID]),
			text.NewCol(2, fmt.Sprintf("%.2f", inv.TotalAmount), props.Text{Align: align.Right}),
		)
	}
	return save(m, "invoice-summary")
}

// PrintDetailed generates one section per invoice with its line items.
func (p *ReceiptPrinter) PrintDetailed(invoices []models.Invoice) (string, error) {
	names, err := p.customerNames()
	if err != nil {
		return "", err
	}
	itemNames, err := p.itemNames()
	if err != nil {
		return "", err
	}
	m := newDocument()
	for _, inv := range invoices {
		m.AddRow(10, text.NewCol(12, fmt.Sprintf("Invoice %d", inv.ID), props.Text{Size: 13, Style: fontstyle.Bold}))
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("Date: %s", inv.Date)))
		if name := names[inv.CustomerID]; name != "" {
			m.AddRow(6, text.NewCol(12, fmt.Sprintf("Customer: %s", name)))
		}
		m.AddRow(7,
			text.NewCol(5, "Item", props.Text{Style: fontstyle.Bold}),
			text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, "Price", props.Text{Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(3, "Total", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		)
		lines, err := p.store.GetInvoiceItems(inv.ID)
		if err != nil {
			return "", err
		}
		for _, it := range lines {
			m.AddRow(6,
				text.NewCol(5, itemNames[it.ItemID]),
				text.NewCol(2, fmt.Sprintf("%g", it.Quantity), props.Text{Align: align.Right}),
				text.NewCol(2, fmt.Sprintf("%.2f", it.UnitPrice), props.Text{Align: align.Right}),
				text.NewCol(3, fmt.Sprintf("%.2f", it.LineTotal), props.Text{Align: align.Right}),
			)
		}
		m.AddRow(4, text.NewCol(12, " "))
	}
	return save(m, "invoice-detail")
}

func (p *ReceiptPrinter) customerNames() (map[uint]string, error) {
	customers, err := p.store.GetAllCustomers()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (p *ReceiptPrinter) itemNames() (map[uint]string, error) {
	items, err := p.store.GetItems()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(items))
	for _, it := range items {
		names[it.ID] = it.Name
	}
	return names, nil
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().WithPageSize(pagesize.A4).Build()
	return maroto.New(cfg)
}

func save(m core.Maroto, prefix string) (string, error) {
	doc, err := m.Generate()
	if err != nil {
		return "", fmt.Errorf("generate pdf: %w", err)
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s.pdf", prefix, uuid.NewString()))
	if err := doc.Save(path); err != nil {
		return "", fmt.Errorf("save pdf: %w", err)
	}
	return path, nil
}

// Open launches the platform's default viewer for the document.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	return nil
}
