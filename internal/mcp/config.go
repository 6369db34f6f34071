package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/byul-ai/byul-mcp/internal/byul"
	"github.com/byul-ai/byul-mcp/internal/config"
	"github.com/byul-ai/byul-mcp/internal/logging"
	"github.com/byul-ai/byul-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters     map[string]ToolAdapter
	ResourceAdapters map[string]ResourceAdapter
	Options          []server.StreamableHTTPOption
	Logger           logging.Logger
}

// DefaultConfig wires the news tool and resource to one upstream client built
// from the startup configuration.
func DefaultConfig(app config.App, log logging.Logger) Config {
	if app.APIKey == "" {
		log.Info("BYUL_API_KEY is not set; news_fetch and byul://news will fail until it is provided")
	}

	client := byul.NewClient(byul.Options{BaseURL: app.BaseURL, APIKey: app.APIKey}, log.WithName("byul"))

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			tools.ToolNewsFetch: &tools.NewsFetchHandler{Service: client, Log: log.WithName(tools.ToolNewsFetch)},
		},
		ResourceAdapters: map[string]ResourceAdapter{
			tools.ResourceNews: &tools.NewsResourceHandler{Service: client, Log: log.WithName("news_resource")},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
		Logger: log,
	}
}
