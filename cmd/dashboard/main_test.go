package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

func TestRenderCmd_Filters(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		cmd       renderCmd
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "sem datas", cmd: renderCmd{KPI: "ecommerceRevenue", Breakdown: "weekly"}},
		{name: "preset", cmd: renderCmd{KPI: "ecommerceRevenue", Breakdown: "weekly", Preset: "last7days"}, wantStart: "2025-05-13", wantEnd: "2025-05-20"},
		{name: "datas explícitas vencem o preset", cmd: renderCmd{KPI: "ecommerceRevenue", Breakdown: "weekly", Preset: "last7days", Start: "2025-04-01", End: "2025-04-30"}, wantStart: "2025-04-01", wantEnd: "2025-04-30"},
		{name: "preset desconhecido", cmd: renderCmd{Preset: "yesterday"}, wantErr: true},
		{name: "data inválida", cmd: renderCmd{Start: "01/04/2025"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := tt.cmd.filters(now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			params := filters.Params(domain.CategoryRevenue)
			assert.Equal(t, tt.wantStart, params.Get("startDate"))
			assert.Equal(t, tt.wantEnd, params.Get("endDate"))
		})
	}
}

func TestRenderCmd_FiltersCarryKPIAndBreakdown(t *testing.T) {
	cmd := renderCmd{KPI: "newCustomers", Breakdown: "monthly"}

	filters, err := cmd.filters(time.Now())
	require.NoError(t, err)

	assert.Equal(t, "newCustomers", filters.SelectedKPI())
	assert.Equal(t, dashboard.BreakdownMonthly, filters.Sort(domain.CategoryRevenue).Breakdown)
}
