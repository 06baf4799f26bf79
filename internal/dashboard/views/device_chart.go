package views

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

const fallbackDeviceColor = "#8884d8"

var deviceColors = map[domain.Device]string{
	domain.DeviceDesktop: "#3b82f6",
	domain.DeviceMobile:  "#10b981",
	domain.DeviceTablet:  "#f59e0b",
}

func deviceColor(device domain.Device) string {
	if c, ok := deviceColors[device]; ok {
		return c
	}
	return fallbackDeviceColor
}

// DeviceChart é a pizza de receita por dispositivo com a participação de cada um
func (r *Renderer) DeviceChart(slot dashboard.Slot, filters dashboard.Filters) (template.HTML, error) {
	state := filters.Sort(domain.CategoryDevices)
	return r.panel("devices", "Device Performance", slot, func() (content, error) {
		devices := dashboard.SortByRevenue(dashboard.Devices(slot), func(d domain.DeviceMetric) float64 {
			return metricValue(state.SortBy, d.Revenue, d.ConversionRate)
		}, sortOrder(filters, domain.CategoryDevices))

		labels := make([]string, len(devices))
		revenues := make([]float64, len(devices))
		for i, d := range devices {
			labels[i] = string(d.Device)
			revenues[i] = d.Revenue
		}
		shares := dashboard.Shares(labels, revenues)

		data := make([]opts.PieData, len(devices))
		legend := make([]legendItem, len(devices))
		for i, d := range devices {
			color := deviceColor(d.Device)
			data[i] = opts.PieData{
				Name:      labels[i],
				Value:     d.Revenue,
				ItemStyle: &opts.ItemStyle{Color: color},
			}
			legend[i] = legendItem{
				Color: color,
				Label: labels[i],
				Value: dashboard.FormatCurrency(d.Revenue),
				Share: shares[i].Formatted,
			}
		}

		pie := charts.NewPie()
		pie.SetGlobalOptions(r.globalOptions("", "Total Revenue: "+dashboard.FormatCurrency(dashboard.Total(revenues)))...)
		pie.AddSeries("Revenue", data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{d}%"}),
		)

		html, err := renderChart(pie)
		if err != nil {
			return content{}, err
		}

		body, err := execute("legend", legend)
		if err != nil {
			return content{}, err
		}
		return content{chart: html, body: body}, nil
	})
}
