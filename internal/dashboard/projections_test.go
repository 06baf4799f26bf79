package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

func productRevenue(p domain.ProductMetric) float64 { return p.Revenue }

func TestSortByRevenue(t *testing.T) {
	products := []domain.ProductMetric{
		{Product: "Product 1", Revenue: 29503},
		{Product: "Product 2", Revenue: 67557},
		{Product: "Product 3", Revenue: 29503},
		{Product: "Product 4", Revenue: 77044},
	}

	desc := SortByRevenue(products, productRevenue, domain.SortDesc)
	asc := SortByRevenue(products, productRevenue, domain.SortAsc)

	names := func(ps []domain.ProductMetric) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.Product
		}
		return out
	}

	assert.Equal(t, []string{"Product 4", "Product 2", "Product 1", "Product 3"}, names(desc))
	assert.Equal(t, []string{"Product 1", "Product 3", "Product 2", "Product 4"}, names(asc), "empate preserva a ordem")
	assert.Equal(t, "Product 1", products[0].Product, "entrada não é alterada")
}

func TestShares(t *testing.T) {
	t.Run("valores simples", func(t *testing.T) {
		shares := Shares([]string{"a", "b"}, []float64{3, 1})
		require.Len(t, shares, 2)
		assert.Equal(t, "75.0%", shares[0].Formatted)
		assert.Equal(t, "25.0%", shares[1].Formatted)
		assert.Equal(t, "a", shares[0].Label)
	})

	t.Run("dispositivos do seed", func(t *testing.T) {
		shares := Shares(
			[]string{"Desktop", "Mobile", "Tablet"},
			[]float64{118971, 59041, 89905},
		)
		assert.Equal(t, "44.4%", shares[0].Formatted)
		assert.Equal(t, "22.0%", shares[1].Formatted)
		assert.Equal(t, "33.6%", shares[2].Formatted)
	})

	t.Run("total zero", func(t *testing.T) {
		shares := Shares([]string{"a"}, []float64{0})
		assert.Equal(t, "0.0%", shares[0].Formatted)
	})

	t.Run("vazio", func(t *testing.T) {
		assert.Empty(t, Shares(nil, nil))
	})
}

func TestTotalAndTop(t *testing.T) {
	values := []float64{29503, 67557, 30869, 40404, 77044}

	assert.Equal(t, 245377.0, Total(values))
	assert.Equal(t, 4, Top(values))
	assert.Equal(t, 0, Top([]float64{5, 5}))
	assert.Equal(t, -1, Top(nil))
	assert.Equal(t, 0.0, Total(nil))
}

func TestThousands(t *testing.T) {
	assert.Equal(t, 5.0, Thousands(5000))
	assert.Equal(t, 23.0, Thousands(23000))
	assert.Equal(t, 8.5, Thousands(8500))
}

func TestColorScale(t *testing.T) {
	scale := NewColorScale([]float64{72000, 25000, 61000})

	assert.Equal(t, 25000.0, scale.Min)
	assert.Equal(t, 72000.0, scale.Max)
	assert.Equal(t, ColorScaleLow, scale.Color(25000))
	assert.Equal(t, ColorScaleHigh, scale.Color(72000))
	assert.Equal(t, "#6cad96", scale.Color(48500))
	assert.Equal(t, ColorScaleLow, scale.Color(0), "abaixo do domínio")
	assert.Equal(t, ColorScaleHigh, scale.Color(1e9), "acima do domínio")
}

func TestColorScale_SingleValue(t *testing.T) {
	scale := NewColorScale([]float64{1000})

	assert.Equal(t, ColorScaleHigh, scale.Color(1000))
}

func TestColorScale_InvalidColor(t *testing.T) {
	scale := ColorScale{Min: 0, Max: 1, From: "green", To: ColorScaleHigh}

	assert.Equal(t, ColorNoData, scale.Color(0.5))
}

func seedRevenue() []domain.RevenuePoint {
	raw := []struct {
		date    string
		revenue float64
		rate    float64
	}{
		{"2025-04-01", 5000, 0.06}, {"2025-04-08", 8500, 0.08}, {"2025-04-15", 12000, 0.07},
		{"2025-04-22", 18000, 0.12}, {"2025-05-01", 15000, 0.10}, {"2025-05-08", 23000, 0.15},
		{"2025-05-15", 17000, 0.11}, {"2025-05-22", 14000, 0.09}, {"2025-06-29", 25000, 0.13},
		{"2025-06-05", 20000, 0.11},
	}
	out := make([]domain.RevenuePoint, len(raw))
	for i, r := range raw {
		d, _ := time.Parse("2006-01-02", r.date)
		out[i] = domain.RevenuePoint{Date: d, Revenue: r.revenue, ConversionRate: r.rate}
	}
	return out
}

func TestBucketRevenue(t *testing.T) {
	t.Run("semanal", func(t *testing.T) {
		buckets := BucketRevenue(seedRevenue(), BreakdownWeekly)

		require.Len(t, buckets, 10)
		assert.Equal(t, "Apr 1", buckets[0].Label)
		assert.Equal(t, "Jun 5", buckets[8].Label, "ordenado por data")
		assert.Equal(t, "Jun 29", buckets[9].Label)
		assert.Equal(t, 20000.0, buckets[8].Revenue)
	})

	t.Run("mensal", func(t *testing.T) {
		buckets := BucketRevenue(seedRevenue(), BreakdownMonthly)

		require.Len(t, buckets, 3)
		assert.Equal(t, RevenueBucket{Label: "Apr 2025", Start: date(2025, 4, 1), Revenue: 43500, ConversionRate: 0.0825}, buckets[0])
		assert.Equal(t, 69000.0, buckets[1].Revenue)
		assert.Equal(t, 0.1125, buckets[1].ConversionRate)
		assert.Equal(t, "Jun 2025", buckets[2].Label)
		assert.Equal(t, 45000.0, buckets[2].Revenue)
		assert.Equal(t, 0.12, buckets[2].ConversionRate)
	})

	t.Run("diário agrupa o mesmo dia", func(t *testing.T) {
		points := []domain.RevenuePoint{
			{Date: date(2025, 4, 1), Revenue: 100, ConversionRate: 0.1},
			{Date: date(2025, 4, 1).Add(6 * time.Hour), Revenue: 50, ConversionRate: 0.3},
		}
		buckets := BucketRevenue(points, BreakdownDaily)

		require.Len(t, buckets, 1)
		assert.Equal(t, 150.0, buckets[0].Revenue)
		assert.Equal(t, 0.2, buckets[0].ConversionRate)
	})

	t.Run("vazio", func(t *testing.T) {
		assert.Empty(t, BucketRevenue(nil, BreakdownWeekly))
	})
}
