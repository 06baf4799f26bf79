package views

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

// StateMap pinta cada estado numa escala linear de verde pela receita.
// A lista abaixo do mapa usa a mesma escala.
func (r *Renderer) StateMap(slot dashboard.Slot, filters dashboard.Filters) (template.HTML, error) {
	return r.panel("states", "Ecommerce Revenue by State", slot, func() (content, error) {
		states := dashboard.SortByRevenue(dashboard.States(slot), func(s domain.StateMetric) float64 {
			return s.Revenue
		}, sortOrder(filters, domain.CategoryStates))

		revenues := make([]float64, len(states))
		for i, s := range states {
			revenues[i] = s.Revenue
		}
		scale := dashboard.NewColorScale(revenues)

		data := make([]opts.MapData, len(states))
		legend := make([]legendItem, len(states))
		for i, s := range states {
			data[i] = opts.MapData{Name: s.State, Value: s.Revenue}
			legend[i] = legendItem{
				Color: scale.Color(s.Revenue),
				Label: s.State,
				Value: dashboard.FormatCurrency(s.Revenue),
			}
		}

		m := charts.NewMap()
		m.RegisterMapType(r.mapType)
		m.SetGlobalOptions(r.globalOptions("", "")...)
		m.SetGlobalOptions(
			charts.WithVisualMapOpts(opts.VisualMap{
				Calculable: opts.Bool(true),
				Min:        float32(scale.Min),
				Max:        float32(scale.Max),
				InRange:    &opts.VisualMapInRange{Color: []string{scale.From, scale.To}},
			}),
		)
		m.AddSeries("Revenue", data)

		html, err := renderChart(m)
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
