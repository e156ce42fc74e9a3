// Package services provides the invoice reporting logic.
//
// This file holds the payment-term policy: an invoice is due a fixed number
// of calendar days after the day it is reported.
package services

import (
	"time"

	"github.com/jonboulle/clockwork"

	"owing/internal/core"
)

// PaymentTermDays is the number of calendar days between the report date
// and the due date.
const PaymentTermDays = 30

// Today reads the clock and truncates it to the calendar day in loc.
// A nil loc means time.Local.
func Today(c clockwork.Clock, loc *time.Location) core.Date {
	if loc == nil {
		loc = time.Local
	}
	now := c.Now().In(loc)
	return core.NewDate(now.Year(), int(now.Month()), now.Day())
}

// DueDate returns today advanced by PaymentTermDays. Month and year
// rollover follow normal calendar arithmetic.
func DueDate(today core.Date) core.Date {
	return today.AddDays(PaymentTermDays)
}
