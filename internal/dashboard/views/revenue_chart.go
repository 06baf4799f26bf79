package views

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

const (
	revenueColor    = "#3b82f6"
	conversionColor = "#f97316"
)

// RevenueChart é a linha de receita (eixo esquerdo, em milhares) e de taxa de
// conversão (eixo direito), agregadas pelo breakdown escolhido
func (r *Renderer) RevenueChart(slot dashboard.Slot, filters dashboard.Filters) (template.HTML, error) {
	breakdown := filters.Sort(domain.CategoryRevenue).Breakdown
	return r.panel("revenue", "Revenue & Conversion Rate", slot, func() (content, error) {
		buckets := dashboard.BucketRevenue(dashboard.RevenuePoints(slot), breakdown)

		labels := make([]string, len(buckets))
		revenue := make([]opts.LineData, len(buckets))
		conversion := make([]opts.LineData, len(buckets))
		for i, b := range buckets {
			labels[i] = b.Label
			revenue[i] = opts.LineData{Name: b.Label, Value: dashboard.Thousands(b.Revenue)}
			conversion[i] = opts.LineData{Name: b.Label, Value: b.ConversionRate}
		}

		line := charts.NewLine()
		line.SetGlobalOptions(r.globalOptions("", string(breakdown))...)
		line.SetGlobalOptions(
			charts.WithYAxisOpts(opts.YAxis{
				Name:      "Revenue",
				AxisLabel: &opts.AxisLabel{Formatter: "{value}K"},
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		)
		line.ExtendYAxis(opts.YAxis{
			Name:      "Conversion Rate",
			Position:  "right",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		})
		line.SetXAxis(labels).
			AddSeries("Ecommerce Revenue", revenue,
				charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: revenueColor}),
			).
			AddSeries("Ecommerce Conversion Rate", conversion,
				charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), YAxisIndex: 1}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: conversionColor}),
			)

		html, err := renderChart(line)
		if err != nil {
			return content{}, err
		}
		return content{chart: html}, nil
	})
}
