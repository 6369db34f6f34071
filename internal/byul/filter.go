package byul

import "strconv"

// NewsFilter holds the upstream /news query filters. Presentation options
// live elsewhere so they cannot leak into the outbound request.
type NewsFilter struct {
	Cursor        string
	SinceID       string
	Query         string
	Symbol        string
	Category      string
	StartDate     string
	EndDate       string
	Limit         *int
	MinImportance *int
}

// Params returns the query parameters for the filter, omitting unset values.
func (f NewsFilter) Params() map[string]string {
	params := make(map[string]string)
	setString(params, "cursor", f.Cursor)
	setString(params, "sinceId", f.SinceID)
	setString(params, "q", f.Query)
	setString(params, "symbol", f.Symbol)
	setString(params, "category", f.Category)
	setString(params, "startDate", f.StartDate)
	setString(params, "endDate", f.EndDate)
	setInt(params, "limit", f.Limit)
	setInt(params, "minImportance", f.MinImportance)
	return params
}

func setString(params map[string]string, key, value string) {
	if value != "" {
		params[key] = value
	}
}

func setInt(params map[string]string, key string, value *int) {
	if value != nil {
		params[key] = strconv.Itoa(*value)
	}
}
