package domain

import "time"

// KPI identifiers aceitos pelo seletor de KPI do dashboard
const (
	KPIEcommerceRevenue        = "ecommerceRevenue"
	KPINewCustomers            = "newCustomers"
	KPIRepeatPurchaseRate      = "repeatPurchaseRate"
	KPIAverageOrderValue       = "averageOrderValue"
	KPIEcommerceConversionRate = "ecommerceConversionRate"
)

// KPIDateRange é o período de referência opcional de um snapshot
type KPIDateRange struct {
	Start *time.Time `json:"start,omitempty" bson:"start,omitempty"`
	End   *time.Time `json:"end,omitempty" bson:"end,omitempty"`
}

// KPISnapshot representa um snapshot de KPIs; o "atual" é o mais recente por createdAt
type KPISnapshot struct {
	Document                `bson:",inline"`
	EcommerceRevenue        float64       `json:"ecommerceRevenue" bson:"ecommerceRevenue"`
	NewCustomers            int64         `json:"newCustomers" bson:"newCustomers"`
	RepeatPurchaseRate      float64       `json:"repeatPurchaseRate" bson:"repeatPurchaseRate"`
	AverageOrderValue       float64       `json:"averageOrderValue" bson:"averageOrderValue"`
	EcommerceConversionRate float64       `json:"ecommerceConversionRate" bson:"ecommerceConversionRate"`
	DateRange               *KPIDateRange `json:"dateRange,omitempty" bson:"dateRange,omitempty"`
	CreatedAt               time.Time     `json:"createdAt" bson:"createdAt"`
}

// Value retorna o valor do KPI identificado por key
func (k KPISnapshot) Value(key string) (float64, bool) {
	switch key {
	case KPIEcommerceRevenue:
		return k.EcommerceRevenue, true
	case KPINewCustomers:
		return float64(k.NewCustomers), true
	case KPIRepeatPurchaseRate:
		return k.RepeatPurchaseRate, true
	case KPIAverageOrderValue:
		return k.AverageOrderValue, true
	case KPIEcommerceConversionRate:
		return k.EcommerceConversionRate, true
	}
	return 0, false
}

// KPISnapshotInput é o payload de ingestão de um snapshot.
// Os campos obrigatórios são ponteiros para que zero seja um valor válido.
type KPISnapshotInput struct {
	EcommerceRevenue        *float64      `json:"ecommerceRevenue" validate:"required"`
	NewCustomers            *int64        `json:"newCustomers" validate:"required"`
	RepeatPurchaseRate      *float64      `json:"repeatPurchaseRate" validate:"required"`
	AverageOrderValue       *float64      `json:"averageOrderValue" validate:"required"`
	EcommerceConversionRate *float64      `json:"ecommerceConversionRate" validate:"required"`
	DateRange               *KPIDateRange `json:"dateRange,omitempty"`
	CreatedAt               *time.Time    `json:"createdAt,omitempty"`
}

// ToSnapshot converte o payload validado em um KPISnapshot
func (in KPISnapshotInput) ToSnapshot(now time.Time) *KPISnapshot {
	snapshot := &KPISnapshot{
		DateRange: in.DateRange,
		CreatedAt: now.UTC(),
	}
	if in.EcommerceRevenue != nil {
		snapshot.EcommerceRevenue = *in.EcommerceRevenue
	}
	if in.NewCustomers != nil {
		snapshot.NewCustomers = *in.NewCustomers
	}
	if in.RepeatPurchaseRate != nil {
		snapshot.RepeatPurchaseRate = *in.RepeatPurchaseRate
	}
	if in.AverageOrderValue != nil {
		snapshot.AverageOrderValue = *in.AverageOrderValue
	}
	if in.EcommerceConversionRate != nil {
		snapshot.EcommerceConversionRate = *in.EcommerceConversionRate
	}
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		snapshot.CreatedAt = in.CreatedAt.UTC()
	}
	return snapshot
}
