package core

import (
	"errors"
	"math"
	"testing"
)

func TestDateAddDays(t *testing.T) {
	cases := []struct {
		from Date
		days int
		want Date
	}{
		{NewDate(2023, 1, 5), 30, NewDate(2023, 2, 4)},
		{NewDate(2023, 1, 31), 30, NewDate(2023, 3, 2)},
		{NewDate(2024, 1, 31), 30, NewDate(2024, 3, 1)},
		{NewDate(2024, 12, 15), 30, NewDate(2025, 1, 14)},
	}
	for _, tc := range cases {
		if got := tc.from.AddDays(tc.days); !got.Equal(tc.want.Time) {
			t.Errorf("%s + %d = %s, want %s", tc.from, tc.days, got, tc.want)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 0}).Validate(); err != nil {
		t.Fatalf("expected ok for zero, got %v", err)
	}
	if err := (Money{Cents: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestInvoiceValidate(t *testing.T) {
	good := &Invoice{Customer: "Kaio", Orders: []Order{{Amount: Money{Cents: 1000}}}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	empty := &Invoice{Customer: "Empty", Orders: []Order{}}
	if err := empty.Validate(); err != nil {
		t.Fatalf("expected ok for empty orders, got %v", err)
	}

	tests := []struct {
		name   string
		inv    *Invoice
		target error
	}{
		{"nil invoice", nil, ErrInvalidInvoice},
		{"blank customer", &Invoice{Customer: "  ", Orders: []Order{}}, ErrInvalidInvoice},
		{"nil orders", &Invoice{Customer: "Kaio"}, ErrInvalidInvoice},
		{"newline in customer", &Invoice{Customer: "Kaio\namount: 0", Orders: []Order{}}, ErrInvalidInvoice},
		{"tab in customer", &Invoice{Customer: "Ka\tio", Orders: []Order{}}, ErrInvalidInvoice},
		{"outstanding overflows", &Invoice{Customer: "Kaio", Orders: []Order{{Amount: Money{Cents: math.MaxInt64}}, {Amount: Money{Cents: 1}}}}, ErrInvalidInvoice},
		{"negative amount", &Invoice{Customer: "Kaio", Orders: []Order{{Amount: Money{Cents: 1}}, {Amount: Money{Cents: -5}}}}, ErrInvalidOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inv.Validate()
			if !errors.Is(err, tt.target) {
				t.Fatalf("Validate() = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestInvoiceValidate_LargestSum(t *testing.T) {
	inv := &Invoice{Customer: "Kaio", Orders: []Order{{Amount: Money{Cents: math.MaxInt64 - 1}}, {Amount: Money{Cents: 1}}}}
	if err := inv.Validate(); err != nil {
		t.Fatalf("expected ok at the int64 limit, got %v", err)
	}
	if got := inv.Outstanding().Cents; got != math.MaxInt64 {
		t.Fatalf("Outstanding() = %d, want %d", got, int64(math.MaxInt64))
	}
}

func TestInvalidOrderErrorIndex(t *testing.T) {
	inv := &Invoice{Customer: "Kaio", Orders: []Order{{}, {}, {Amount: Money{Cents: -1}}}}
	var oe *InvalidOrderError
	if !errors.As(inv.Validate(), &oe) {
		t.Fatalf("expected InvalidOrderError")
	}
	if oe.Index != 2 {
		t.Fatalf("Index = %d, want 2", oe.Index)
	}
}

func TestInvoiceOutstanding(t *testing.T) {
	cases := []struct {
		orders []Order
		want   int64
	}{
		{[]Order{}, 0},
		{[]Order{{Amount: Money{Cents: 1000}}, {Amount: Money{Cents: 1000}}}, 2000},
		{[]Order{{Amount: Money{Cents: 1}}, {Amount: Money{Cents: 0}}, {Amount: Money{Cents: 249}}}, 250},
	}
	for i, tc := range cases {
		inv := &Invoice{Customer: "c", Orders: tc.orders}
		if got := inv.Outstanding().Cents; got != tc.want {
			t.Fatalf("case %d: Outstanding() = %d, want %d", i, got, tc.want)
		}
	}
}
