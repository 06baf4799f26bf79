package domain

import "time"

// RevenuePoint é um ponto da série temporal de receita
type RevenuePoint struct {
	Document       `bson:",inline"`
	Date           time.Time `json:"date" bson:"date" validate:"required"`
	Revenue        float64   `json:"revenue" bson:"revenue"`
	ConversionRate float64   `json:"conversionRate" bson:"conversionRate"`
}

// ProductMetric é a performance de um produto
type ProductMetric struct {
	Document       `bson:",inline"`
	Product        string     `json:"product" bson:"product" validate:"required"`
	Revenue        float64    `json:"revenue" bson:"revenue"`
	ConversionRate float64    `json:"conversionRate" bson:"conversionRate"`
	Category       string     `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// MarketingChannelMetric é a performance de um canal de marketing
type MarketingChannelMetric struct {
	Document       `bson:",inline"`
	Channel        string   `json:"channel" bson:"channel" validate:"required"`
	Revenue        float64  `json:"revenue" bson:"revenue"`
	ConversionRate float64  `json:"conversionRate" bson:"conversionRate"`
	Cost           *float64 `json:"cost,omitempty" bson:"cost,omitempty"`
	Impressions    *int64   `json:"impressions,omitempty" bson:"impressions,omitempty"`
	Clicks         *int64   `json:"clicks,omitempty" bson:"clicks,omitempty"`
}

// StateMetric é a receita de um estado
type StateMetric struct {
	Document  `bson:",inline"`
	State     string  `json:"state" bson:"state" validate:"required"`
	Revenue   float64 `json:"revenue" bson:"revenue"`
	StateCode string  `json:"stateCode,omitempty" bson:"stateCode,omitempty"`
	Region    string  `json:"region,omitempty" bson:"region,omitempty"`
}

// Device enumera os dispositivos aceitos
type Device string

const (
	DeviceDesktop Device = "Desktop"
	DeviceMobile  Device = "Mobile"
	DeviceTablet  Device = "Tablet"
)

// DeviceMetric é a performance por dispositivo
type DeviceMetric struct {
	Document       `bson:",inline"`
	Device         Device  `json:"device" bson:"device" validate:"required,oneof=Desktop Mobile Tablet"`
	Revenue        float64 `json:"revenue" bson:"revenue"`
	ConversionRate float64 `json:"conversionRate" bson:"conversionRate"`
	Sessions       *int64  `json:"sessions,omitempty" bson:"sessions,omitempty"`
	Users          *int64  `json:"users,omitempty" bson:"users,omitempty"`
}
