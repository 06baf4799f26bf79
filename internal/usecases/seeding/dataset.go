package seeding

import (
	"time"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

// Dataset agrupa os registros gravados por um reseed
type Dataset struct {
	KPIs              []domain.KPISnapshot
	Revenue           []domain.RevenuePoint
	Products          []domain.ProductMetric
	MarketingChannels []domain.MarketingChannelMetric
	States            []domain.StateMetric
	Devices           []domain.DeviceMetric
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultDataset devolve os dados de exemplo do dashboard
func DefaultDataset(now time.Time) Dataset {
	return Dataset{
		KPIs: []domain.KPISnapshot{
			{
				EcommerceRevenue:        268277,
				NewCustomers:            198,
				RepeatPurchaseRate:      67.54,
				AverageOrderValue:       402.21,
				EcommerceConversionRate: 1.27,
				CreatedAt:               now,
			},
		},
		// a ordem dos dois últimos pontos é a mesma do dataset de origem
		Revenue: []domain.RevenuePoint{
			{Date: day("2025-04-01"), Revenue: 5000, ConversionRate: 0.06},
			{Date: day("2025-04-08"), Revenue: 8500, ConversionRate: 0.08},
			{Date: day("2025-04-15"), Revenue: 12000, ConversionRate: 0.07},
			{Date: day("2025-04-22"), Revenue: 18000, ConversionRate: 0.12},
			{Date: day("2025-05-01"), Revenue: 15000, ConversionRate: 0.10},
			{Date: day("2025-05-08"), Revenue: 23000, ConversionRate: 0.15},
			{Date: day("2025-05-15"), Revenue: 17000, ConversionRate: 0.11},
			{Date: day("2025-05-22"), Revenue: 14000, ConversionRate: 0.09},
			{Date: day("2025-06-29"), Revenue: 25000, ConversionRate: 0.13},
			{Date: day("2025-06-05"), Revenue: 20000, ConversionRate: 0.11},
		},
		Products: []domain.ProductMetric{
			{Product: "Product 1", Revenue: 29503, ConversionRate: 1.53},
			{Product: "Product 2", Revenue: 67557, ConversionRate: 1.47},
			{Product: "Product 3", Revenue: 30869, ConversionRate: 1.53},
			{Product: "Product 4", Revenue: 40404, ConversionRate: 1.46},
			{Product: "Product 5", Revenue: 77044, ConversionRate: 1.42},
		},
		MarketingChannels: []domain.MarketingChannelMetric{
			{Channel: "AdRoll", Revenue: 56115, ConversionRate: 1.45},
			{Channel: "LinkedIn Ads", Revenue: 53221, ConversionRate: 1.53},
			{Channel: "YouTube Ads", Revenue: 47870, ConversionRate: 1.45},
			{Channel: "Bing Ads", Revenue: 38219, ConversionRate: 1.54},
			{Channel: "Google Ads", Revenue: 37643, ConversionRate: 1.45},
			{Channel: "Facebook Ads", Revenue: 35128, ConversionRate: 1.47},
		},
		States: []domain.StateMetric{
			{State: "California", Revenue: 72000, StateCode: "CA", Region: "West"},
			{State: "Texas", Revenue: 55000, StateCode: "TX", Region: "South"},
			{State: "Florida", Revenue: 48000, StateCode: "FL", Region: "South"},
			{State: "New York", Revenue: 61000, StateCode: "NY", Region: "Northeast"},
			{State: "Illinois", Revenue: 32000, StateCode: "IL", Region: "Midwest"},
			{State: "Pennsylvania", Revenue: 25000, StateCode: "PA", Region: "Northeast"},
		},
		Devices: []domain.DeviceMetric{
			{Device: domain.DeviceDesktop, Revenue: 118971, ConversionRate: 1.47},
			{Device: domain.DeviceMobile, Revenue: 59041, ConversionRate: 1.37},
			{Device: domain.DeviceTablet, Revenue: 89905, ConversionRate: 1.58},
		},
	}
}
