package tools

import (
	"context"
	"fmt"

	"github.com/byul-ai/byul-mcp/internal/byul"
	"github.com/byul-ai/byul-mcp/internal/format"
	"github.com/byul-ai/byul-mcp/internal/mcp/tools/types"
)

const (
	ToolNewsFetch   = "news_fetch"
	ResourceNews    = "news"
	ResourceScheme  = "byul"
	ResourceHost    = "news"
	NewsURITemplate = "byul://news{?limit,cursor,sinceId,minImportance,q,symbol,category,startDate,endDate,format,includeHeader}"
)

type NewsService interface {
	FetchNews(ctx context.Context, filter byul.NewsFilter) (*byul.NewsResponse, error)
}

// fetchNews is the single path both surfaces take to the upstream API and
// the formatter.
func fetchNews(ctx context.Context, svc NewsService, req types.NewsRequest) ([]format.Part, error) {
	if svc == nil {
		return nil, fmt.Errorf("news service not configured")
	}
	resp, err := svc.FetchNews(ctx, req.Filter)
	if err != nil {
		return nil, err
	}
	return format.Render(*resp, req.Format), nil
}
