package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/byul-ai/byul-mcp/internal/logging"
)

type NewsResourceHandler struct {
	Service NewsService
	Log     logging.Logger
}

// ResourceAdapter serves byul://news reads. Query values are coerced by the
// same parser the tool uses.
func (h *NewsResourceHandler) ResourceAdapter(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	args, err := ParseNewsURI(uri)
	if err != nil {
		return nil, err
	}
	newsReq, err := ParseNewsRequest(args)
	if err != nil {
		return nil, err
	}
	h.Log.Debug("news resource", "uri", uri, "format", newsReq.Format.Mode)

	parts, err := fetchNews(ctx, h.Service, newsReq)
	if err != nil {
		h.Log.Error(err, "news resource failed", "uri", uri)
		return nil, err
	}

	contents := make([]mcp.ResourceContents, 0, len(parts))
	for _, p := range parts {
		contents = append(contents, mcp.TextResourceContents{
			URI:      uri,
			MIMEType: p.MIMEType,
			Text:     p.Text,
		})
	}
	return contents, nil
}
