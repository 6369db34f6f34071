package tools

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/byul-ai/byul-mcp/internal/format"
	"github.com/byul-ai/byul-mcp/internal/mcp/tools/types"
)

// Argument names shared by the news_fetch tool and the byul://news resource.
const (
	ArgLimit         = "limit"
	ArgCursor        = "cursor"
	ArgSinceID       = "sinceId"
	ArgMinImportance = "minImportance"
	ArgQuery         = "q"
	ArgSymbol        = "symbol"
	ArgCategory      = "category"
	ArgStartDate     = "startDate"
	ArgEndDate       = "endDate"
	ArgFormat        = "format"
	ArgIncludeHeader = "includeHeader"

	MinLimit         = 1
	MaxLimit         = 100
	MinImportanceMin = 1
	MinImportanceMax = 10
)

// QueryArgs lists the resource template query variables in template order.
var QueryArgs = []string{
	ArgLimit, ArgCursor, ArgSinceID, ArgMinImportance, ArgQuery, ArgSymbol,
	ArgCategory, ArgStartDate, ArgEndDate, ArgFormat, ArgIncludeHeader,
}

// ParseNewsRequest validates typed call arguments. Numbers arrive as JSON
// numbers and flags as JSON booleans; strings in those fields are rejected.
// Resource reads go through ParseNewsURI first, which does the string
// coercion for the query string.
func ParseNewsRequest(args map[string]any) (types.NewsRequest, error) {
	var req types.NewsRequest
	var err error

	strFields := []struct {
		key string
		dst *string
	}{
		{ArgCursor, &req.Filter.Cursor},
		{ArgSinceID, &req.Filter.SinceID},
		{ArgQuery, &req.Filter.Query},
		{ArgSymbol, &req.Filter.Symbol},
		{ArgCategory, &req.Filter.Category},
		{ArgStartDate, &req.Filter.StartDate},
		{ArgEndDate, &req.Filter.EndDate},
	}
	for _, f := range strFields {
		if *f.dst, err = stringArgument(args, f.key); err != nil {
			return types.NewsRequest{}, err
		}
	}

	if req.Filter.Limit, err = intArgument(args, ArgLimit, MinLimit, MaxLimit); err != nil {
		return types.NewsRequest{}, err
	}
	if req.Filter.MinImportance, err = intArgument(args, ArgMinImportance, MinImportanceMin, MinImportanceMax); err != nil {
		return types.NewsRequest{}, err
	}

	modeName, err := stringArgument(args, ArgFormat)
	if err != nil {
		return types.NewsRequest{}, err
	}
	if req.Format.Mode, err = format.ParseMode(modeName); err != nil {
		return types.NewsRequest{}, err
	}
	if req.Format.IncludeHeader, err = boolArgument(args, ArgIncludeHeader); err != nil {
		return types.NewsRequest{}, err
	}
	return req, nil
}

// ParseNewsURI extracts resource arguments from a byul://news URI and
// converts the numeric and boolean query values to their typed form. Only the
// first value of a repeated query key is used; empty values count as unset.
func ParseNewsURI(uri string) (map[string]any, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid resource uri %q: %w", uri, err)
	}
	if u.Scheme != ResourceScheme || u.Host != ResourceHost {
		return nil, fmt.Errorf("unsupported resource uri %q", uri)
	}
	args := make(map[string]any)
	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		value := strings.TrimSpace(values[0])
		switch key {
		case ArgLimit, ArgMinImportance:
			if value == "" {
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%s must be an integer", key)
			}
			args[key] = n
		case ArgIncludeHeader:
			switch value {
			case "":
			case "true":
				args[key] = true
			case "false":
				args[key] = false
			default:
				return nil, fmt.Errorf("%s must be true or false", key)
			}
		default:
			args[key] = values[0]
		}
	}
	return args, nil
}

func stringArgument(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

func intArgument(args map[string]any, key string, min, max int) (*int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("%s must be an integer", key)
		}
		if v < float64(min) || v > float64(max) {
			return nil, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
	case int:
	default:
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	if n < min || n > max {
		return nil, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return &n, nil
}

func boolArgument(args map[string]any, key string) (bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b, nil
}
