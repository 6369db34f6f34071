package mcp

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/byul-ai/byul-mcp/internal/format"
	"github.com/byul-ai/byul-mcp/internal/logging"
	"github.com/byul-ai/byul-mcp/internal/mcp/tools"
)

const (
	ServerName    = "byul_mcp"
	ServerVersion = "0.1.4"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type ResourceAdapter interface {
	ResourceAdapter(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(logToolCalls(cfg.Logger)),
	)

	toolDefinitions := map[string]mcp.Tool{
		tools.ToolNewsFetch: mcp.NewTool(tools.ToolNewsFetch,
			mcp.WithTitleAnnotation("Fetch News"),
			mcp.WithDescription("Fetch latest financial news from Byul REST API with filters"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithNumber(tools.ArgLimit,
				mcp.Description("Maximum number of articles to return (1-100)"),
				mcp.Min(tools.MinLimit),
				mcp.Max(tools.MaxLimit),
			),
			mcp.WithString(tools.ArgCursor,
				mcp.Description("Pagination cursor returned by a previous call"),
			),
			mcp.WithString(tools.ArgSinceID,
				mcp.Description("Only return articles newer than this article id"),
			),
			mcp.WithNumber(tools.ArgMinImportance,
				mcp.Description("Minimum importance score (1-10)"),
				mcp.Min(tools.MinImportanceMin),
				mcp.Max(tools.MinImportanceMax),
			),
			mcp.WithString(tools.ArgQuery,
				mcp.Description("Free-text search query"),
			),
			mcp.WithString(tools.ArgSymbol,
				mcp.Description("Ticker symbol (e.g., 'AAPL')"),
			),
			mcp.WithString(tools.ArgCategory,
				mcp.Description("News category"),
			),
			mcp.WithString(tools.ArgStartDate,
				mcp.Description("Start of the date range (ISO-8601)"),
			),
			mcp.WithString(tools.ArgEndDate,
				mcp.Description("End of the date range (ISO-8601)"),
			),
			mcp.WithString(tools.ArgFormat,
				mcp.Description("Output format (default: markdown)"),
				mcp.Enum(format.Modes...),
				mcp.DefaultString(string(format.DefaultMode)),
			),
			mcp.WithBoolean(tools.ArgIncludeHeader,
				mcp.Description("Prefix the list with an article count header (markdown and text only)"),
				mcp.DefaultBool(false),
			),
		),
	}

	resourceTemplates := map[string]mcp.ResourceTemplate{
		tools.ResourceNews: mcp.NewResourceTemplate(tools.NewsURITemplate, "Byul News",
			mcp.WithTemplateDescription("Latest financial news from Byul REST API. Accepts the news_fetch fields as query parameters."),
			mcp.WithTemplateMIMEType(format.MIMEMarkdown),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			cfg.Logger.Info("skipping unknown tool", "name", name)
			continue
		}
		mcpServer.AddTool(tool, adapter.ToolAdapter)
	}

	for name, adapter := range cfg.ResourceAdapters {
		template, ok := resourceTemplates[name]
		if !ok {
			cfg.Logger.Info("skipping unknown resource", "name", name)
			continue
		}
		mcpServer.AddResourceTemplate(template, adapter.ResourceAdapter)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio speaks the protocol over in/out until ctx is done or in closes.
// errLog must not write to out.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer, errLog *log.Logger) error {
	stdio := server.NewStdioServer(s.MCP)
	if errLog != nil {
		stdio.SetErrorLogger(errLog)
	}
	return stdio.Listen(ctx, in, out)
}

func logToolCalls(l logging.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			failed := err != nil || (result != nil && result.IsError)
			l.Debug("tool call", "tool", req.Params.Name, "duration", time.Since(start), "failed", failed)
			return result, err
		}
	}
}
