package helpers

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NZ пустое значение считается нулем
func NZ(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency сумма в долларах с разделителем разрядов: $1,234.50
func FormatCurrency(value float64) string {
	if value < 0 {
		return "-" + currencyPrinter.Sprintf("$%.2f", -value)
	}
	return currencyPrinter.Sprintf("$%.2f", value)
}

// FiscalYear финансовый год начинается 1 апреля и называется по году окончания:
// 15.05.2020 -> 2021, 15.02.2021 -> 2021
func FiscalYear(date time.Time) int {
	if date.Month() >= time.April {
		return date.Year() + 1
	}
	return date.Year()
}

// FiscalYearDisplay "2020-2021"
func FiscalYearDisplay(fiscalYear int) string {
	return fmt.Sprintf("%d-%d", fiscalYear-1, fiscalYear)
}

func PtrTime(t time.Time) *time.Time {
	return &t
}

func SameStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func StrValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
