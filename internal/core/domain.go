package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
)

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Order struct {
		Amount Money
	}

	// Invoice is owned by the caller. The reporter only sets DueDate.
	// A nil Orders slice is rejected; an empty one is a valid invoice with
	// nothing outstanding.
	Invoice struct {
		Customer string
		Orders   []Order
		DueDate  Date
	}
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidInvoice = errors.New("invalid invoice")
	ErrInvalidOrder   = errors.New("invalid order")
)

// InvalidInvoiceError reports an invoice with a missing or unprintable
// customer, a missing order sequence, or a total that does not fit in Money.
type InvalidInvoiceError struct {
	Reason string
}

func (e *InvalidInvoiceError) Error() string {
	return "invalid invoice: " + e.Reason
}

func (e *InvalidInvoiceError) Unwrap() error { return ErrInvalidInvoice }

// InvalidOrderError reports an order whose amount is negative or not a
// number. Index is the position of the order in the invoice.
type InvalidOrderError struct {
	Index  int
	Reason string
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("invalid order %d: %s", e.Index, e.Reason)
}

func (e *InvalidOrderError) Unwrap() error { return ErrInvalidOrder }

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// AddDays moves the date by n calendar days. Month and year overflow are
// normalized by time.AddDate.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Validate checks the invoice and all of its orders. It has no side
// effects so callers can run it before writing any output.
func (inv *Invoice) Validate() error {
	if inv == nil {
		return &InvalidInvoiceError{Reason: "invoice is nil"}
	}
	if strings.TrimSpace(inv.Customer) == "" {
		return &InvalidInvoiceError{Reason: "customer is empty"}
	}
	if strings.IndexFunc(inv.Customer, unicode.IsControl) >= 0 {
		return &InvalidInvoiceError{Reason: "customer contains control characters"}
	}
	if inv.Orders == nil {
		return &InvalidInvoiceError{Reason: "orders are missing"}
	}
	var total int64
	for i, o := range inv.Orders {
		if err := o.Amount.Validate(); err != nil {
			return &InvalidOrderError{Index: i, Reason: "amount is negative"}
		}
		if o.Amount.Cents > math.MaxInt64-total {
			return &InvalidInvoiceError{Reason: "outstanding amount overflows"}
		}
		total += o.Amount.Cents
	}
	return nil
}

// Outstanding is the sum of all order amounts. Validate rejects invoices
// whose sum does not fit in Money.
func (inv *Invoice) Outstanding() Money {
	var total Money
	for _, o := range inv.Orders {
		total = total.Add(o.Amount)
	}
	return total
}
