package views

import (
	"html/template"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

type controlLink struct {
	Label  string
	Link   string
	Active bool
}

type sortControl struct {
	Title  string
	Fields []controlLink
	Orders []controlLink
}

type controlsData struct {
	DateLabel  string
	Presets    []controlLink
	ClearLink  string
	KPIs       []controlLink
	Breakdowns []controlLink
	Sorts      []sortControl
	ResetLink  string
}

var sortFieldOptions = []struct {
	Field string
	Label string
}{
	{Field: "revenue", Label: "Revenue"},
	{Field: "conversionRate", Label: "Conversion Rate"},
}

var sortOrderOptions = []struct {
	Order domain.SortOrder
	Label string
}{
	{Order: domain.SortAsc, Label: "↑"},
	{Order: domain.SortDesc, Label: "↓"},
}

var categoryTitles = map[domain.Category]string{
	domain.CategoryProducts:  "Products",
	domain.CategoryMarketing: "Marketing",
	domain.CategoryStates:    "States",
	domain.CategoryDevices:   "Devices",
}

var breakdownLabels = map[dashboard.Breakdown]string{
	dashboard.BreakdownDaily:   "Daily",
	dashboard.BreakdownWeekly:  "Weekly",
	dashboard.BreakdownMonthly: "Monthly",
}

// FilterControls renderiza os controles como links; cada link codifica
// na query string o novo estado de filtros
func (r *Renderer) FilterControls(filters dashboard.Filters) (template.HTML, error) {
	now := r.now()
	current := filters.DateRange()

	data := controlsData{
		DateLabel: dateLabel(current),
		ResetLink: r.link(filters.Reset()),
	}

	for _, preset := range dashboard.Presets {
		next, _ := filters.ApplyPreset(preset.Key, now)
		data.Presets = append(data.Presets, controlLink{
			Label:  preset.Label,
			Link:   r.link(next),
			Active: sameRange(current, next.DateRange()),
		})
	}
	if current.Start != nil || current.End != nil {
		data.ClearLink = r.link(filters.WithDateRange(nil, nil))
	}

	for _, option := range dashboard.KPIOptions {
		data.KPIs = append(data.KPIs, controlLink{
			Label:  option.Label,
			Link:   r.link(filters.WithSelectedKPI(option.Key)),
			Active: option.Key == filters.SelectedKPI(),
		})
	}

	revenueBreakdown := filters.Sort(domain.CategoryRevenue).Breakdown
	for _, breakdown := range dashboard.BreakdownOptions {
		data.Breakdowns = append(data.Breakdowns, controlLink{
			Label:  breakdownLabels[breakdown],
			Link:   r.link(filters.WithBreakdown(domain.CategoryRevenue, breakdown)),
			Active: breakdown == revenueBreakdown,
		})
	}

	for _, category := range dashboard.SortableCategories {
		state := filters.Sort(category)
		control := sortControl{Title: categoryTitles[category]}
		for _, option := range sortFieldOptions {
			control.Fields = append(control.Fields, controlLink{
				Label:  option.Label,
				Link:   r.link(filters.WithSortBy(category, option.Field)),
				Active: option.Field == state.SortBy,
			})
		}
		for _, option := range sortOrderOptions {
			control.Orders = append(control.Orders, controlLink{
				Label:  option.Label,
				Link:   r.link(filters.WithSortOrder(category, option.Order)),
				Active: option.Order == state.SortOrder,
			})
		}
		data.Sorts = append(data.Sorts, control)
	}

	return execute("controls", data)
}

func dateLabel(r domain.DateRange) string {
	if !r.Complete() {
		return "Select date range"
	}
	return dashboard.FormatShortDate(*r.Start) + " - " + dashboard.FormatShortDate(*r.End)
}

func sameRange(a, b domain.DateRange) bool {
	if !a.Complete() || !b.Complete() {
		return false
	}
	return a.Start.Equal(*b.Start) && a.End.Equal(*b.End)
}
