package dashboard

import (
	"net/url"
	"time"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/utils"
)

// Breakdown é a granularidade escolhida para a série de receita.
// Não é enviada para a API.
type Breakdown string

const (
	BreakdownDaily   Breakdown = "daily"
	BreakdownWeekly  Breakdown = "weekly"
	BreakdownMonthly Breakdown = "monthly"
)

const (
	DefaultSortBy    = "revenue"
	DefaultSortOrder = domain.SortDesc
	DefaultBreakdown = BreakdownWeekly
	DefaultKPI       = domain.KPIEcommerceRevenue
)

// SortableCategories são as categorias com controles de ordenação próprios
var SortableCategories = []domain.Category{
	domain.CategoryProducts,
	domain.CategoryMarketing,
	domain.CategoryStates,
	domain.CategoryDevices,
}

// preferenceCategories são as categorias com preferências guardadas no estado:
// a série de receita só usa o breakdown
var preferenceCategories = append([]domain.Category{domain.CategoryRevenue}, SortableCategories...)

// BreakdownOptions segue a ordem do seletor de granularidade
var BreakdownOptions = []Breakdown{BreakdownWeekly, BreakdownMonthly, BreakdownDaily}

// KPIOption é uma entrada do seletor de KPI
type KPIOption struct {
	Key   string
	Label string
}

var KPIOptions = []KPIOption{
	{Key: domain.KPIEcommerceRevenue, Label: "Ecommerce Revenue"},
	{Key: domain.KPINewCustomers, Label: "New Customers"},
	{Key: domain.KPIRepeatPurchaseRate, Label: "Repeat Purchase Rate"},
	{Key: domain.KPIAverageOrderValue, Label: "Average Order Value"},
	{Key: domain.KPIEcommerceConversionRate, Label: "Ecommerce Conversion Rate"},
}

// SortState é a preferência de ordenação de uma categoria
type SortState struct {
	SortBy    string
	SortOrder domain.SortOrder
	Breakdown Breakdown
}

func defaultSortState() SortState {
	return SortState{SortBy: DefaultSortBy, SortOrder: DefaultSortOrder, Breakdown: DefaultBreakdown}
}

// Filters é o estado de filtros do dashboard. É um valor imutável:
// os setters devolvem uma cópia e nunca alteram o receptor.
type Filters struct {
	dateRange   domain.DateRange
	selectedKPI string
	sorts       map[domain.Category]SortState
}

func NewFilters() Filters {
	sorts := make(map[domain.Category]SortState, len(preferenceCategories))
	for _, category := range preferenceCategories {
		sorts[category] = defaultSortState()
	}
	return Filters{selectedKPI: DefaultKPI, sorts: sorts}
}

func (f Filters) DateRange() domain.DateRange {
	return f.dateRange
}

func (f Filters) SelectedKPI() string {
	return f.selectedKPI
}

// Sort devolve a preferência da categoria, ou o padrão quando não há nenhuma
func (f Filters) Sort(category domain.Category) SortState {
	if state, ok := f.sorts[category]; ok {
		return state
	}
	return defaultSortState()
}

func (f Filters) WithDateRange(start, end *time.Time) Filters {
	out := f.clone()
	out.dateRange = domain.DateRange{Start: copyTime(start), End: copyTime(end)}
	return out
}

func (f Filters) WithSelectedKPI(kpi string) Filters {
	out := f.clone()
	out.selectedKPI = kpi
	return out
}

func (f Filters) WithSortBy(category domain.Category, sortBy string) Filters {
	return f.withSort(category, func(s *SortState) { s.SortBy = sortBy })
}

func (f Filters) WithSortOrder(category domain.Category, order domain.SortOrder) Filters {
	return f.withSort(category, func(s *SortState) { s.SortOrder = order })
}

func (f Filters) WithBreakdown(category domain.Category, breakdown Breakdown) Filters {
	return f.withSort(category, func(s *SortState) { s.Breakdown = breakdown })
}

// Reset devolve o estado inicial
func (f Filters) Reset() Filters {
	return NewFilters()
}

func (f Filters) withSort(category domain.Category, apply func(*SortState)) Filters {
	out := f.clone()
	state := out.Sort(category)
	apply(&state)
	out.sorts[category] = state
	return out
}

func (f Filters) clone() Filters {
	out := Filters{
		dateRange: domain.DateRange{
			Start: copyTime(f.dateRange.Start),
			End:   copyTime(f.dateRange.End),
		},
		selectedKPI: f.selectedKPI,
		sorts:       make(map[domain.Category]SortState, len(f.sorts)),
	}
	for category, state := range f.sorts {
		out.sorts[category] = state
	}
	return out
}

// Params monta os parâmetros de consulta da API para a categoria
func (f Filters) Params(category domain.Category) url.Values {
	params := url.Values{}

	switch category {
	case domain.CategoryKPIs, domain.CategoryRevenue:
		if f.dateRange.Complete() {
			params.Set("startDate", f.dateRange.Start.Format(utils.DateLayout))
			params.Set("endDate", f.dateRange.End.Format(utils.DateLayout))
		}
	default:
		if isSortable(category) {
			state := f.Sort(category)
			params.Set("sortBy", state.SortBy)
			params.Set("order", string(state.SortOrder))
		}
	}

	return params
}

// Query codifica o estado completo na query string da página.
// Só valores diferentes do padrão são escritos.
func (f Filters) Query() url.Values {
	values := url.Values{}
	if f.dateRange.Start != nil {
		values.Set("startDate", f.dateRange.Start.Format(utils.DateLayout))
	}
	if f.dateRange.End != nil {
		values.Set("endDate", f.dateRange.End.Format(utils.DateLayout))
	}
	if f.selectedKPI != DefaultKPI {
		values.Set("kpi", f.selectedKPI)
	}

	defaults := defaultSortState()
	for _, category := range preferenceCategories {
		state := f.Sort(category)
		if state.SortBy != defaults.SortBy {
			values.Set(queryKey(category, "sortBy"), state.SortBy)
		}
		if state.SortOrder != defaults.SortOrder {
			values.Set(queryKey(category, "order"), string(state.SortOrder))
		}
		if state.Breakdown != defaults.Breakdown {
			values.Set(queryKey(category, "breakdown"), string(state.Breakdown))
		}
	}
	return values
}

// ParseFilters reconstrói o estado a partir da query string da página.
// Datas inválidas são ignoradas.
func ParseFilters(values url.Values) Filters {
	f := NewFilters()

	start, errStart := utils.ParseDate(values.Get("startDate"))
	end, errEnd := utils.ParseDate(values.Get("endDate"))
	if errStart == nil && errEnd == nil {
		f = f.WithDateRange(start, end)
	}

	if kpi := values.Get("kpi"); kpi != "" {
		f = f.WithSelectedKPI(kpi)
	}

	for _, category := range preferenceCategories {
		if v := values.Get(queryKey(category, "sortBy")); v != "" {
			f = f.WithSortBy(category, v)
		}
		if v := values.Get(queryKey(category, "order")); v != "" {
			f = f.WithSortOrder(category, domain.SortOrder(v))
		}
		if v := values.Get(queryKey(category, "breakdown")); v != "" {
			f = f.WithBreakdown(category, Breakdown(v))
		}
	}
	return f
}

func queryKey(category domain.Category, field string) string {
	return category.String() + "." + field
}

func isSortable(category domain.Category) bool {
	for _, c := range SortableCategories {
		if c == category {
			return true
		}
	}
	return false
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Preset é um atalho de período
type Preset struct {
	Key   string
	Label string
	Range func(now time.Time) (start, end time.Time)
}

// Presets segue a ordem exibida no seletor de período
var Presets = []Preset{
	{Key: "last7days", Label: "Last 7 days", Range: lastDays(7)},
	{Key: "last30days", Label: "Last 30 days", Range: lastDays(30)},
	{Key: "last90days", Label: "Last 90 days", Range: lastDays(90)},
	{Key: "thismonth", Label: "This month", Range: thisMonth},
	{Key: "lastmonth", Label: "Last month", Range: lastMonth},
}

// ApplyPreset aplica o preset key; devolve false se não existir
func (f Filters) ApplyPreset(key string, now time.Time) (Filters, bool) {
	for _, preset := range Presets {
		if preset.Key == key {
			start, end := preset.Range(now)
			return f.WithDateRange(&start, &end), true
		}
	}
	return f, false
}

func lastDays(n int) func(time.Time) (time.Time, time.Time) {
	return func(now time.Time) (time.Time, time.Time) {
		today := truncateDay(now)
		return today.AddDate(0, 0, -n), today
	}
}

func thisMonth(now time.Time) (time.Time, time.Time) {
	today := truncateDay(now)
	return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), today
}

func lastMonth(now time.Time) (time.Time, time.Time) {
	today := truncateDay(now)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, -1, 0), firstOfMonth.AddDate(0, 0, -1)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
