// Package views renderiza os componentes do dashboard em HTML com go-echarts.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/utils"
)

const (
	defaultChartHeight = "360px"
	defaultMapType     = "USA"
	pageTitle          = "E-commerce Dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Renderer monta os componentes a partir dos slots do cache e do estado de filtros
type Renderer struct {
	theme      string
	mapType    string
	assetsHost string
	basePath   string
	now        func() time.Time
}

type Option func(*Renderer)

func WithTheme(theme string) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithMapType define o mapa registrado no go-echarts para o gráfico de estados
func WithMapType(mapType string) Option {
	return func(r *Renderer) {
		if mapType != "" {
			r.mapType = mapType
		}
	}
}

func WithAssetsHost(host string) Option {
	return func(r *Renderer) {
		r.assetsHost = host
	}
}

// WithBasePath define o caminho usado nos links dos controles de filtro
func WithBasePath(path string) Option {
	return func(r *Renderer) {
		r.basePath = path
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{
		theme:    types.ThemeWesteros,
		mapType:  defaultMapType,
		basePath: "/",
		now:      time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// panelData alimenta o template "panel": carregando, erro ou conteúdo
type panelData struct {
	ID      string
	Title   string
	Loading bool
	Error   string
	Chart   string
	Body    template.HTML
}

// content é o que um componente produz quando o slot tem dado
type content struct {
	chart string
	body  template.HTML
}

// panel aplica a regra comum dos componentes: loading vira placeholder,
// erro vira painel de erro, caso contrário build monta o conteúdo
func (r *Renderer) panel(id, title string, slot dashboard.Slot, build func() (content, error)) (template.HTML, error) {
	data := panelData{ID: id, Title: title}

	switch {
	case slot.IsLoading:
		data.Loading = true
	case slot.HasError():
		data.Error = slot.ErrorMessage
	default:
		c, err := build()
		if err != nil {
			data.Error = fmt.Sprintf("Failed to render %s: %v", title, err)
		} else {
			data.Chart = c.chart
			data.Body = c.body
		}
	}

	return execute("panel", data)
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("views: execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) globalOptions(title, subtitle string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		ChartID: utils.GenerateDOMID("chart"),
		Theme:   r.theme,
		Width:   "100%",
		Height:  defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(initOpts),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

// link monta a URL da página para um novo estado de filtros
func (r *Renderer) link(filters dashboard.Filters) string {
	query := filters.Query().Encode()
	if query == "" {
		return r.basePath
	}
	return r.basePath + "?" + query
}

type summaryItem struct {
	Label string
	Value string
}

type legendItem struct {
	Color string
	Label string
	Value string
	Share string
}

// metricValue escolhe o campo usado para ordenar; campos sem suporte
// caem na receita
func metricValue(sortBy string, revenue, conversionRate float64) float64 {
	if sortBy == "conversionRate" {
		return conversionRate
	}
	return revenue
}

func sortOrder(filters dashboard.Filters, category domain.Category) domain.SortOrder {
	return domain.ParseSortOrder(string(filters.Sort(category).SortOrder))
}
