package handler

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/utils"
)

// parseDateRange lê startDate/endDate; data malformada é erro mesmo sem o outro limite
func parseDateRange(query url.Values) (domain.DateRange, error) {
	start, err := utils.ParseDate(query.Get("startDate"))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("startDate: %w", err)
	}

	end, err := utils.ParseDate(query.Get("endDate"))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("endDate: %w", err)
	}

	return domain.DateRange{Start: start, End: end}, nil
}

func parseListParams(query url.Values) (domain.ListParams, error) {
	dateRange, err := parseDateRange(query)
	if err != nil {
		return domain.ListParams{}, err
	}

	params := domain.ListParams{
		SortBy:    query.Get("sortBy"),
		Order:     query.Get("order"),
		DateRange: dateRange,
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return domain.ListParams{}, fmt.Errorf("limit: must be a non-negative integer, got %q", raw)
		}
		params.Limit = limit
	}

	return params, nil
}
