package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rohansood98/ggs-accounting/internal/models"
	"github.com/rohansood98/ggs-accounting/internal/store"
)

// Validation and data errors surfaced before anything touches storage.
var (
	ErrNoItems         = errors.New("invoice requires at least one item")
	ErrInvalidType     = errors.New("invalid invoice type")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownItem     = errors.New("unknown item")
	ErrMissingSource   = errors.New("sale line requires a source customer")
	ErrPriceUnresolved = errors.New("could not resolve unit price")
)

// LineInput is one requested invoice line. The item may be referenced by ID
// or by its unique name. Price is optional: when absent it falls back to the
// most recent matching inventory lot. SourceID names the supplying customer
// on Sale lines; Purchases source from the counterparty itself.
type LineInput struct {
	ItemID   uint
	ItemName string
	SourceID uint
	Quantity float64
	Price    *float64
}

type CreateInvoiceInput struct {
	Type       string // Sale or Purchase
	CustomerID uint
	Date       string // ISO YYYY-MM-DD, defaults to today
	IsCredit   bool
	AmountPaid float64
	Lines      []LineInput
}

// InvoiceService orchestrates invoice posting: it validates and resolves the
// requested lines, then hands the whole posting to the store, which writes
// header, lines, balance delta and lot adjustments in one transaction.
type InvoiceService struct {
	store *store.Store
}

func NewInvoiceService(st *store.Store) *InvoiceService { return &InvoiceService{store: st} }

// Create posts an invoice and returns its id. Resolution failures (unknown
// item, missing source, unresolvable price) are reported before any write.
func (s *InvoiceService) Create(in CreateInvoiceInput) (uint, error) {
	if len(in.Lines) == 0 {
		return 0, ErrNoItems
	}
	if in.Type != models.InvoiceSale && in.Type != models.InvoicePurchase {
		return 0, fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	lines := make([]store.InvoiceLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
		itemID, err := s.resolveItem(l)
		if err != nil {
			return 0, err
		}

		// The lot consulted for price fallback belongs to the supplying
		// customer: the line's source on a Sale, the counterparty on a
		// Purchase.
		var sourceID *uint
		lotCustomer := in.CustomerID
		if in.Type == models.InvoiceSale {
			if l.SourceID == 0 {
				return 0, ErrMissingSource
			}
			src := l.SourceID
			sourceID = &src
			lotCustomer = l.SourceID
		}

		price, err := s.resolvePrice(l, itemID, lotCustomer)
		if err != nil {
			return 0, err
		}

		lines = append(lines, store.InvoiceLine{
			ItemID:     itemID,
			CustomerID: in.CustomerID,
			SourceID:   sourceID,
			Quantity:   l.Quantity,
			UnitPrice:  price,
		})
	}

	return s.store.CreateInvoice(date, in.Type, in.CustomerID, lines, in.IsCredit, in.AmountPaid)
}

func (s *InvoiceService) resolveItem(l LineInput) (uint, error) {
	if l.ItemID != 0 {
		return l.ItemID, nil
	}
	item, err := s.store.FindItemByName(l.ItemName)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, l.ItemName)
	}
	return item.ID, nil
}

func (s *InvoiceService) resolvePrice(l LineInput, itemID, lotCustomer uint) (float64, error) {
	if l.Price != nil {
		return *l.Price, nil
	}
	price, err := s.store.LatestLotPrice(itemID, lotCustomer)
	if errors.Is(err, store.ErrNoLot) {
		return 0, fmt.Errorf("%w: item %d, customer %d", ErrPriceUnresolved, itemID, lotCustomer)
	}
	if err != nil {
		return 0, err
	}
	return price, nil
}
