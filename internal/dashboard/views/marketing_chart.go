package views

import (
	"html/template"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

const marketingColor = "#10b981"

// MarketingChart é a barra horizontal de receita por canal, com o resumo
// de canal líder, total de canais e receita total
func (r *Renderer) MarketingChart(slot dashboard.Slot, filters dashboard.Filters) (template.HTML, error) {
	state := filters.Sort(domain.CategoryMarketing)
	return r.panel("marketing", "Marketing Channel Performance", slot, func() (content, error) {
		channels := dashboard.SortByRevenue(dashboard.MarketingChannels(slot), func(c domain.MarketingChannelMetric) float64 {
			return metricValue(state.SortBy, c.Revenue, c.ConversionRate)
		}, sortOrder(filters, domain.CategoryMarketing))

		labels := make([]string, len(channels))
		data := make([]opts.BarData, len(channels))
		revenues := make([]float64, len(channels))
		for i, c := range channels {
			labels[i] = c.Channel
			data[i] = opts.BarData{Name: c.Channel, Value: c.Revenue}
			revenues[i] = c.Revenue
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalOptions("", "")...)
		bar.SetXAxis(labels).
			AddSeries("Revenue", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: marketingColor}))
		bar.XYReversal()

		html, err := renderChart(bar)
		if err != nil {
			return content{}, err
		}

		summary, err := execute("summary", marketingSummary(labels, revenues))
		if err != nil {
			return content{}, err
		}
		return content{chart: html, body: summary}, nil
	})
}

func marketingSummary(labels []string, revenues []float64) []summaryItem {
	items := []summaryItem{
		{Label: "Top Channel", Value: "-"},
		{Label: "Revenue", Value: dashboard.FormatCurrency(0)},
		{Label: "Total Channels", Value: strconv.Itoa(len(labels))},
		{Label: "Total Revenue", Value: dashboard.FormatCurrency(dashboard.Total(revenues))},
	}
	if top := dashboard.Top(revenues); top >= 0 {
		items[0].Value = labels[top]
		items[1].Value = dashboard.FormatCurrency(revenues[top])
	}
	return items
}
