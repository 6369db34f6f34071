package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL = "https://api.byul.ai/api/v2"
	DefaultEnvFile = ".env"

	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// App is the configuration snapshot taken once at process start. Nothing
// below the command layer reads the environment directly.
type App struct {
	APIKey    string
	BaseURL   string
	LogLevel  string
	Transport string
	HTTPHost  string
	HTTPPort  int
}

// Addr returns the listen address used by the HTTP transport.
func (a App) Addr() string {
	return fmt.Sprintf("%s:%d", a.HTTPHost, a.HTTPPort)
}

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	setDefaults()
	if root != nil {
		for name, key := range flagKeys {
			if flag := root.PersistentFlags().Lookup(name); flag != nil {
				_ = viper.BindPFlag(key, flag)
			}
		}
	}
}

// LoadEnvFile loads the env file. Variables already present in the process
// environment win over the file. A missing default .env is ignored; an env
// file named explicitly through --env-file or ENV_FILE must load.
func LoadEnvFile() error {
	path := EnvFile()
	if err := godotenv.Load(path); err != nil {
		if path == DefaultEnvFile && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, TransportStdio)
	viper.SetDefault(KeyHTTPHost, "127.0.0.1")
	viper.SetDefault(KeyHTTPPort, 8000)
	viper.SetDefault(KeyEnvFile, DefaultEnvFile)
}

func APIKey() string    { return strings.TrimSpace(viper.GetString(KeyAPIKey)) }
func BaseURL() string   { return strings.TrimSpace(viper.GetString(KeyBaseURL)) }
func LogLevel() string  { return viper.GetString(KeyLogLevel) }
func Transport() string { return strings.ToLower(viper.GetString(KeyTransport)) }
func HTTPHost() string  { return viper.GetString(KeyHTTPHost) }
func HTTPPort() int     { return viper.GetInt(KeyHTTPPort) }
func EnvFile() string   { return viper.GetString(KeyEnvFile) }

// Load validates the bound values and returns an App snapshot.
func Load() (App, error) {
	app := App{
		APIKey:    APIKey(),
		BaseURL:   BaseURL(),
		LogLevel:  LogLevel(),
		Transport: Transport(),
		HTTPHost:  HTTPHost(),
		HTTPPort:  HTTPPort(),
	}
	if app.BaseURL == "" {
		app.BaseURL = DefaultBaseURL
	}
	switch app.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return App{}, fmt.Errorf("unsupported transport %q (want %s or %s)", app.Transport, TransportStdio, TransportHTTP)
	}
	if app.Transport == TransportHTTP && (app.HTTPPort <= 0 || app.HTTPPort > 65535) {
		return App{}, fmt.Errorf("invalid http port %d", app.HTTPPort)
	}
	return app, nil
}
