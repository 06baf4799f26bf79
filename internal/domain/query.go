package domain

import "time"

// Category identifica uma das coleções de métricas expostas pela API
type Category string

const (
	CategoryKPIs      Category = "kpis"
	CategoryRevenue   Category = "revenue"
	CategoryProducts  Category = "products"
	CategoryMarketing Category = "marketing"
	CategoryStates    Category = "states"
	CategoryDevices   Category = "devices"
)

// Categories lista as categorias na ordem em que o dashboard as busca
var Categories = []Category{
	CategoryKPIs,
	CategoryRevenue,
	CategoryProducts,
	CategoryMarketing,
	CategoryStates,
	CategoryDevices,
}

func (c Category) String() string {
	return string(c)
}

// SortOrder é a direção de ordenação
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder segue a regra da API: "desc" ordena decrescente, qualquer outro valor crescente
func ParseSortOrder(s string) SortOrder {
	if s == string(SortDesc) {
		return SortDesc
	}
	return SortAsc
}

// DateRange é uma janela inclusiva; só é aplicada quando ambos os limites existem
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Complete indica se os dois limites estão presentes
func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// ListParams são os parâmetros recebidos do cliente para uma listagem
type ListParams struct {
	SortBy    string
	Order     string
	Limit     int
	DateRange DateRange
}

// ListQuery é a consulta já resolvida entregue ao repositório
type ListQuery struct {
	SortField string
	Order     SortOrder
	Limit     int64
	DateField string
	DateRange DateRange
}

// HasDateWindow indica se a consulta deve filtrar pelo campo de data
func (q ListQuery) HasDateWindow() bool {
	return q.DateField != "" && q.DateRange.Complete()
}
