package views

import (
	"html/template"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
)

type kpiCard struct {
	Key      string
	Label    string
	Value    string
	Link     string
	Selected bool
}

type kpiCardsData struct {
	Loading bool
	Error   string
	Cards   []kpiCard
}

// KPICards renderiza um card por KPI; o card clicado vira o KPI selecionado
func (r *Renderer) KPICards(slot dashboard.Slot, filters dashboard.Filters) (template.HTML, error) {
	data := kpiCardsData{
		Loading: slot.IsLoading,
		Error:   slot.ErrorMessage,
	}

	snapshot := dashboard.KPIs(slot)
	for _, option := range dashboard.KPIOptions {
		card := kpiCard{
			Key:      option.Key,
			Label:    option.Label,
			Value:    "-",
			Link:     r.link(filters.WithSelectedKPI(option.Key)),
			Selected: option.Key == filters.SelectedKPI(),
		}
		if snapshot != nil {
			if v, ok := snapshot.Value(option.Key); ok {
				card.Value = dashboard.FormatKPI(option.Key, v)
			}
		}
		data.Cards = append(data.Cards, card)
	}

	return execute("kpiCards", data)
}
