package currency

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbols = map[string]string{
	"IDR": "Rp",
	"USD": "$",
	"EUR": "€",
}

// Formatter renders whole-unit amounts with locale digit grouping.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New builds a formatter for a BCP 47 language tag and ISO currency code.
// Unparseable tags fall back to Indonesian.
func New(lang, code string) *Formatter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Indonesian
	}
	code = strings.ToUpper(code)
	sym, ok := symbols[code]
	if !ok {
		sym = code
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: sym}
}

// Default is the store default: Indonesian Rupiah without decimals.
func Default() *Formatter {
	return New("id", "IDR")
}

// Format renders amount like "Rp 15.000".
func (f *Formatter) Format(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + f.symbol + " " + f.printer.Sprintf("%d", amount)
}

// Number renders amount with grouping only.
func (f *Formatter) Number(amount int64) string {
	return f.printer.Sprintf("%d", amount)
}
