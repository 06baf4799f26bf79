package dashboard

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

// FormatCurrency formata em dólares sem casas decimais: 268277 -> "$268,277"
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "$0"
	}
	d := decimal.NewFromFloat(value).Round(0)
	if d.IsNegative() {
		return "-$" + groupThousands(d.Abs().String())
	}
	return "$" + groupThousands(d.String())
}

// FormatNumber formata com separador de milhar e até duas casas decimais
func FormatNumber(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	d := decimal.NewFromFloat(value).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, fracPart, _ := strings.Cut(d.String(), ".")
	out := sign + groupThousands(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	return out
}

// FormatPercentage formata um valor já em pontos percentuais: 67.54 -> "67.5%"
func FormatPercentage(value float64, places int32) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0%"
	}
	return decimal.NewFromFloat(value).StringFixed(places) + "%"
}

// FormatShortDate formata como "Apr 1"
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 2")
}

// FormatKPI formata o valor de um KPI conforme seu tipo
func FormatKPI(key string, value float64) string {
	switch key {
	case domain.KPIEcommerceRevenue:
		return FormatCurrency(value)
	case domain.KPIAverageOrderValue:
		return "$" + FormatNumber(value)
	case domain.KPIRepeatPurchaseRate, domain.KPIEcommerceConversionRate:
		return FormatPercentage(value, 2)
	}
	return FormatNumber(value)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
