package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/utils"
)

// As projeções são locais à view: sempre trabalham sobre cópias e nunca
// escrevem de volta no cache.

// SortByRevenue devolve uma cópia ordenada de forma estável pela receita
func SortByRevenue[T any](items []T, revenue func(T) float64, order domain.SortOrder) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if order == domain.SortDesc {
			return revenue(out[i]) > revenue(out[j])
		}
		return revenue(out[i]) < revenue(out[j])
	})
	return out
}

// Share é a participação de um item no total
type Share struct {
	Label     string
	Value     float64
	Percent   decimal.Decimal
	Formatted string
}

// Shares calcula a participação percentual de cada valor, com uma casa decimal
func Shares(labels []string, values []float64) []Share {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}

	hundred := decimal.NewFromInt(100)
	out := make([]Share, len(values))
	for i, v := range values {
		percent := decimal.Zero
		if !total.IsZero() {
			percent = decimal.NewFromFloat(v).Div(total).Mul(hundred).Round(1)
		}
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		out[i] = Share{
			Label:     label,
			Value:     v,
			Percent:   percent,
			Formatted: percent.StringFixed(1) + "%",
		}
	}
	return out
}

// Total soma os valores em aritmética decimal
func Total(values []float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}

// Top devolve o índice do maior valor, ou -1 para lista vazia.
// Em empate vence o primeiro.
func Top(values []float64) int {
	top := -1
	for i, v := range values {
		if top == -1 || v > values[top] {
			top = i
		}
	}
	return top
}

// Thousands converte para milhares, para o eixo de receita ("{value}K")
func Thousands(value float64) float64 {
	return utils.RoundWithTwoDecimalPlace(value / 1000)
}

const (
	ColorScaleLow  = "#d1fae5"
	ColorScaleHigh = "#065f46"
	ColorNoData    = "#c4bcbc"
)

// ColorScale é uma escala linear de cor entre dois hexadecimais
type ColorScale struct {
	Min, Max float64
	From, To string
}

// NewColorScale monta a escala do mapa de estados a partir das receitas
func NewColorScale(values []float64) ColorScale {
	scale := ColorScale{From: ColorScaleLow, To: ColorScaleHigh}
	for i, v := range values {
		if i == 0 || v < scale.Min {
			scale.Min = v
		}
		if i == 0 || v > scale.Max {
			scale.Max = v
		}
	}
	return scale
}

// Color interpola a cor do valor; valores fora do domínio são limitados às pontas
func (s ColorScale) Color(value float64) string {
	from, errFrom := parseHexColor(s.From)
	to, errTo := parseHexColor(s.To)
	if errFrom != nil || errTo != nil {
		return ColorNoData
	}

	t := 1.0
	if s.Max > s.Min {
		t = (value - s.Min) / (s.Max - s.Min)
	}
	t = math.Max(0, math.Min(1, t))

	var rgb [3]int
	for i := range rgb {
		rgb[i] = int(math.Round(float64(from[i]) + (float64(to[i])-float64(from[i]))*t))
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

func parseHexColor(hex string) ([3]int, error) {
	var rgb [3]int
	if len(hex) != 7 || hex[0] != '#' {
		return rgb, fmt.Errorf("invalid color %q", hex)
	}
	for i := range rgb {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return rgb, fmt.Errorf("invalid color %q: %w", hex, err)
		}
		rgb[i] = int(v)
	}
	return rgb, nil
}

// RevenueBucket é um ponto da série de receita agregado pelo breakdown
type RevenueBucket struct {
	Label          string
	Start          time.Time
	Revenue        float64
	ConversionRate float64
}

// BucketRevenue agrega a série pela granularidade escolhida: receita somada,
// taxa de conversão pela média simples. O rótulo é a data do primeiro ponto
// do grupo (mês e ano no breakdown mensal). Breakdown desconhecido é tratado
// como diário.
func BucketRevenue(points []domain.RevenuePoint, breakdown Breakdown) []RevenueBucket {
	sorted := make([]domain.RevenuePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	type group struct {
		bucket RevenueBucket
		rates  decimal.Decimal
		count  int64
	}

	var groups []*group
	index := map[string]*group{}
	for _, p := range sorted {
		key := bucketKey(p.Date.UTC(), breakdown)
		g, ok := index[key]
		if !ok {
			label := FormatShortDate(p.Date)
			if breakdown == BreakdownMonthly {
				label = p.Date.UTC().Format("Jan 2006")
			}
			g = &group{bucket: RevenueBucket{Label: label, Start: p.Date}, rates: decimal.Zero}
			index[key] = g
			groups = append(groups, g)
		}
		g.bucket.Revenue = decimal.NewFromFloat(g.bucket.Revenue).Add(decimal.NewFromFloat(p.Revenue)).InexactFloat64()
		g.rates = g.rates.Add(decimal.NewFromFloat(p.ConversionRate))
		g.count++
	}

	out := make([]RevenueBucket, len(groups))
	for i, g := range groups {
		g.bucket.ConversionRate = g.rates.Div(decimal.NewFromInt(g.count)).Round(4).InexactFloat64()
		out[i] = g.bucket
	}
	return out
}

func bucketKey(t time.Time, breakdown Breakdown) string {
	switch breakdown {
	case BreakdownWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case BreakdownMonthly:
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}
