package byul

import (
	"encoding/json"
	"fmt"
)

// ConfigError reports a missing required setting. It is returned before any
// network activity.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing %s environment variable", e.Key)
}

// HTTPError is returned for non-2xx upstream responses. Body holds the decoded
// upstream payload, or the raw-text fallback when it was not JSON.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *HTTPError) Error() string {
	return e.Message
}
