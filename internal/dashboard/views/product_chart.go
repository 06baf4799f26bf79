package views

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

const productConversionColor = "#8b5cf6"

func (r *Renderer) ProductChart(slot dashboard.Slot, filters dashboard.Filters) (template.HTML, error) {
	state := filters.Sort(domain.CategoryProducts)
	return r.panel("products", "Product Performance", slot, func() (content, error) {
		products := dashboard.SortByRevenue(dashboard.Products(slot), func(p domain.ProductMetric) float64 {
			return metricValue(state.SortBy, p.Revenue, p.ConversionRate)
		}, sortOrder(filters, domain.CategoryProducts))

		labels := make([]string, len(products))
		revenue := make([]opts.BarData, len(products))
		conversion := make([]opts.BarData, len(products))
		for i, p := range products {
			labels[i] = p.Product
			revenue[i] = opts.BarData{Name: p.Product, Value: p.Revenue}
			conversion[i] = opts.BarData{Name: p.Product, Value: p.ConversionRate}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalOptions("", "")...)
		bar.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "Revenue"}))
		bar.ExtendYAxis(opts.YAxis{
			Name:      "Conversion Rate",
			Position:  "right",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}%"},
		})
		bar.SetXAxis(labels).
			AddSeries("Revenue", revenue,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: revenueColor}),
			).
			AddSeries("Conversion Rate", conversion,
				charts.WithBarChartOpts(opts.BarChart{YAxisIndex: 1}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: productConversionColor}),
			)

		html, err := renderChart(bar)
		if err != nil {
			return content{}, err
		}
		return content{chart: html}, nil
	})
}
