package views

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount groups thousands, e.g. 150000 -> "150,000".
func FormatAmount(n int64) string {
	return amountPrinter.Sprintf("%d", n)
}

// FormatETB renders a whole-birr amount, e.g. "150,000 ETB".
func FormatETB(n int64) string {
	return FormatAmount(n) + " ETB"
}

// FormatThousands renders the dashboard revenue tile, e.g. 365000 -> "365.0k".
func FormatThousands(n int64) string {
	return fmt.Sprintf("%.1fk", float64(n)/1000)
}
