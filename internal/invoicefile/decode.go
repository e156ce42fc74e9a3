// Package invoicefile reads invoices from YAML or JSON documents.
package invoicefile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"owing/internal/core"
)

type document struct {
	Customer string     `yaml:"customer"`
	Orders   []orderDoc `yaml:"orders"`
}

type orderDoc struct {
	// Amount is kept as a node so numbers and quoted strings go through
	// the same parser and anything else is reported per order.
	Amount yaml.Node `yaml:"amount"`
}

// Decode reads a single invoice document from r. A missing or null orders
// key leaves Orders nil, which the reporter rejects.
func Decode(r io.Reader) (*core.Invoice, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &core.InvalidInvoiceError{Reason: "document is empty"}
		}
		return nil, fmt.Errorf("parsing invoice: %w", err)
	}

	inv := &core.Invoice{Customer: doc.Customer}
	if doc.Orders == nil {
		return inv, nil
	}
	inv.Orders = make([]core.Order, 0, len(doc.Orders))
	for i, o := range doc.Orders {
		amount, err := parseAmount(&o.Amount)
		if err != nil {
			return nil, &core.InvalidOrderError{Index: i, Reason: err.Error()}
		}
		inv.Orders = append(inv.Orders, core.Order{Amount: amount})
	}
	return inv, nil
}

// Load opens path and decodes it.
func Load(path string) (*core.Invoice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening invoice: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func parseAmount(n *yaml.Node) (core.Money, error) {
	if n.Kind == 0 {
		return core.Money{}, errors.New("amount is missing")
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return core.Money{}, errors.New("amount is not a number")
	}
	switch n.ShortTag() {
	case "!!int", "!!float", "!!str":
	default:
		return core.Money{}, fmt.Errorf("amount %q is not a number", n.Value)
	}
	if len(n.Value) > 0 && n.Value[0] == '-' {
		return core.Money{}, fmt.Errorf("amount %q is negative", n.Value)
	}
	value := n.Value
	if n.ShortTag() == "!!float" && strings.ContainsAny(value, "eE") {
		// Exponent form is expanded to a plain decimal first.
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return core.Money{}, fmt.Errorf("amount %q is not a number", n.Value)
		}
		value = strconv.FormatFloat(f, 'f', -1, 64)
	}
	m, err := core.ParseAmount(value)
	if err != nil {
		return core.Money{}, fmt.Errorf("amount %q is not a number", n.Value)
	}
	return m, nil
}
