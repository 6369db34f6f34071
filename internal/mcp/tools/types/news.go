package types

import (
	"github.com/byul-ai/byul-mcp/internal/byul"
	"github.com/byul-ai/byul-mcp/internal/format"
)

// NewsRequest is a validated news_fetch call. Filter is forwarded upstream;
// Format only shapes the output.
type NewsRequest struct {
	Filter byul.NewsFilter
	Format format.Options
}
