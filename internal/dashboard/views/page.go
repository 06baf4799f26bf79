package views

import (
	"html/template"
	"io"
	"time"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

type pageData struct {
	Title       string
	GeneratedAt string
	Controls    template.HTML
	KPICards    template.HTML
	Revenue     template.HTML
	Products    template.HTML
	Marketing   template.HTML
	Devices     template.HTML
	States      template.HTML
}

// Page compõe todos os componentes num único documento HTML
func (r *Renderer) Page(w io.Writer, slots map[domain.Category]dashboard.Slot, filters dashboard.Filters) error {
	data := pageData{
		Title:       pageTitle,
		GeneratedAt: r.now().UTC().Format(time.RFC1123),
	}

	steps := []struct {
		target *template.HTML
		render func() (template.HTML, error)
	}{
		{&data.Controls, func() (template.HTML, error) { return r.FilterControls(filters) }},
		{&data.KPICards, func() (template.HTML, error) { return r.KPICards(slots[domain.CategoryKPIs], filters) }},
		{&data.Revenue, func() (template.HTML, error) { return r.RevenueChart(slots[domain.CategoryRevenue], filters) }},
		{&data.Products, func() (template.HTML, error) { return r.ProductChart(slots[domain.CategoryProducts], filters) }},
		{&data.Marketing, func() (template.HTML, error) { return r.MarketingChart(slots[domain.CategoryMarketing], filters) }},
		{&data.Devices, func() (template.HTML, error) { return r.DeviceChart(slots[domain.CategoryDevices], filters) }},
		{&data.States, func() (template.HTML, error) { return r.StateMap(slots[domain.CategoryStates], filters) }},
	}
	for _, step := range steps {
		html, err := step.render()
		if err != nil {
			return err
		}
		*step.target = html
	}

	return templates.ExecuteTemplate(w, "page", data)
}
