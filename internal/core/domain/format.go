package domain

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice форматирует цену с группировкой разрядов (локаль en-IN).
// Для отсутствующей или нечисловой цены возвращает "-".
func FormatPrice(value *float64) string {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return "-"
	}
	return pricePrinter.Sprint(number.Decimal(*value, number.MaxFractionDigits(3)))
}
