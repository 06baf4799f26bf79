package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate aceita YYYY-MM-DD ou RFC 3339. String vazia devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if date, err := time.Parse(DateLayout, dateStr); err == nil {
		return &date, nil
	}

	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", dateStr)
	}

	return &date, nil
}
