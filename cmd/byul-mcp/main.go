package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/byul-ai/byul-mcp/internal/config"
	"github.com/byul-ai/byul-mcp/internal/logging"
	"github.com/byul-ai/byul-mcp/internal/mcp"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code. stdout
// belongs to the protocol stream; everything else goes to stderr.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	errLog := log.New(stderr, "[byul-mcp] ", 0)

	root := newRootCommand(stdin, stdout, errLog)
	root.SetArgs(args)
	root.SetOut(stderr)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		errLog.Printf("fatal: %v", err)
		return 1
	}
	return 0
}

func newRootCommand(stdin io.Reader, stdout io.Writer, errLog *log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "byul-mcp",
		Short:         "Byul financial news MCP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), stdin, stdout, errLog)
		},
	}

	root.PersistentFlags().String("base-url", "", "Byul API base URL (env BYUL_BASE_URL)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("transport", "", "Transport: stdio or http")
	root.PersistentFlags().String("host", "", "HTTP host (http transport)")
	root.PersistentFlags().Int("port", 0, "HTTP port (http transport)")
	root.PersistentFlags().String("env-file", "", "Env file to load (default .env, ignored when absent)")

	config.Init(root)
	return root
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer, errLog *log.Logger) error {
	if err := config.LoadEnvFile(); err != nil {
		return err
	}
	app, err := config.Load()
	if err != nil {
		return err
	}

	base, err := logging.NewLogr(app.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(base)

	srv := mcp.New(mcp.DefaultConfig(app, logger))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if app.Transport == config.TransportHTTP {
		return serveHTTP(ctx, srv, app.Addr(), logger)
	}

	logger.Info("serving MCP over stdio", "baseURL", app.BaseURL)
	err = srv.ServeStdio(ctx, stdin, stdout, errLog)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serveHTTP(ctx context.Context, srv *mcp.Server, addr string, logger logging.Logger) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
