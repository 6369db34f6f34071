package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/byul-ai/byul-mcp/internal/logging"
)

type NewsFetchHandler struct {
	Service NewsService
	Log     logging.Logger
}

func (h *NewsFetchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	newsReq, err := ParseNewsRequest(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h.Log.Debug("news_fetch", "params", newsReq.Filter.Params(), "format", newsReq.Format.Mode)

	parts, err := fetchNews(ctx, h.Service, newsReq)
	if err != nil {
		h.Log.Error(err, "news_fetch failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	content := make([]mcp.Content, 0, len(parts))
	for _, p := range parts {
		content = append(content, mcp.NewTextContent(p.Text))
	}
	return &mcp.CallToolResult{Content: content}, nil
}
