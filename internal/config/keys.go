package config

const (
	KeyAPIKey    = "byul_api_key"
	KeyBaseURL   = "byul_base_url"
	KeyLogLevel  = "log_level"
	KeyTransport = "transport"
	KeyHTTPHost  = "http_host"
	KeyHTTPPort  = "http_port"
	KeyEnvFile   = "env_file"
)

// flagKeys maps persistent flag names onto their viper keys.
var flagKeys = map[string]string{
	"base-url":  KeyBaseURL,
	"log-level": KeyLogLevel,
	"transport": KeyTransport,
	"host":      KeyHTTPHost,
	"port":      KeyHTTPPort,
	"env-file":  KeyEnvFile,
}
