package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldCustomer    = "customer"
	FieldOrderCount  = "order_count"
	FieldAmountCents = "amount_cents"
	FieldDueDate     = "due_date"
	FieldLocale      = "locale"
	FieldSource      = "source"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentReporter = "reporter"
	ComponentInvoice  = "invoice"
	ComponentConfig   = "config"
)

// Operations defines standard operation names
const (
	OpPrint    = "print"
	OpValidate = "validate"
	OpParse    = "parse"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithInvoice adds invoice-related fields
func (f LogFields) WithInvoice(customer string, orderCount int, amountCents int64) LogFields {
	f[FieldCustomer] = customer
	f[FieldOrderCount] = orderCount
	f[FieldAmountCents] = amountCents
	return f
}

// WithDueDate adds the due date field
func (f LogFields) WithDueDate(due string) LogFields {
	f[FieldDueDate] = due
	return f
}

// WithLocale adds the locale field
func (f LogFields) WithLocale(tag string) LogFields {
	f[FieldLocale] = tag
	return f
}

// WithSource adds the input source field
func (f LogFields) WithSource(source string) LogFields {
	f[FieldSource] = source
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
