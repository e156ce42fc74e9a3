package services

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/language"

	"owing/internal/core"
	"owing/internal/locale"
	applog "owing/internal/log"
)

var banner = []string{
	"***********************",
	"**** Customer owes ****",
	"***********************",
}

// Reporter prints what a customer owes on an invoice and records the
// invoice due date.
type Reporter struct {
	out    io.Writer
	clock  clockwork.Clock
	tag    language.Tag
	loc    *time.Location
	logger *applog.Logger
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithLocale sets the locale used to render the due date.
func WithLocale(tag language.Tag) ReporterOption {
	return func(r *Reporter) { r.tag = tag }
}

// WithLocation sets the time zone that decides which calendar day "today" is.
func WithLocation(loc *time.Location) ReporterOption {
	return func(r *Reporter) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithLogger sets the logger. Log records never go to the report output.
func WithLogger(l *applog.Logger) ReporterOption {
	return func(r *Reporter) {
		if l != nil {
			r.logger = l.WithComponent(applog.ComponentReporter)
		}
	}
}

// NewReporter creates a reporter writing to out. A nil clock means the
// real wall clock.
func NewReporter(out io.Writer, clock clockwork.Clock, opts ...ReporterOption) *Reporter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	r := &Reporter{
		out:    out,
		clock:  clock,
		tag:    locale.Default,
		loc:    time.Local,
		logger: applog.Discard().WithComponent(applog.ComponentReporter),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PrintOwing writes the banner and the invoice details, and sets
// inv.DueDate. An invalid invoice is rejected before anything is written
// or mutated.
func (r *Reporter) PrintOwing(inv *core.Invoice) error {
	if err := inv.Validate(); err != nil {
		r.logger.Warn("Invoice rejected", applog.NewFields().
			WithOperation(applog.OpValidate).
			WithError(err).
			ToSlice()...)
		return err
	}

	outstanding := inv.Outstanding()
	inv.DueDate = DueDate(Today(r.clock, r.loc))

	w := bufio.NewWriter(r.out)
	for _, line := range banner {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "name: %s\n", inv.Customer)
	fmt.Fprintf(w, "amount: %s\n", outstanding)
	fmt.Fprintf(w, "due: %s\n", locale.ShortDate(r.tag, inv.DueDate.Time))
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write invoice report: %w", err)
	}

	r.logger.Debug("Invoice reported", applog.NewFields().
		WithOperation(applog.OpPrint).
		WithInvoice(inv.Customer, len(inv.Orders), outstanding.Cents).
		WithDueDate(inv.DueDate.String()).
		WithLocale(r.tag.String()).
		ToSlice()...,
	)
	return nil
}
