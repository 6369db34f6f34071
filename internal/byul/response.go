package byul

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Article is a single upstream news item. Missing or null fields are empty.
type Article struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewsResponse is the decoded /news payload. Raw keeps the full upstream value
// so callers can pass it through untouched.
type NewsResponse struct {
	Items []Article
	Raw   json.RawMessage
}

type rawFallback struct {
	Raw string `json:"raw"`
}

// DecodeBody turns a response body into a JSON value. An empty body becomes
// an empty object and anything that is not valid JSON is wrapped as
// {"raw": "<text>"}.
func DecodeBody(body []byte) json.RawMessage {
	if len(body) == 0 {
		return json.RawMessage(`{}`)
	}
	if gjson.ValidBytes(body) {
		return json.RawMessage(bytes.Clone(body))
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rawFallback{Raw: string(body)}); err != nil {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n"))
}

// DecodeNews maps a decoded /news payload onto NewsResponse. A missing or
// non-array items field yields no articles.
func DecodeNews(raw json.RawMessage) NewsResponse {
	resp := NewsResponse{Items: []Article{}, Raw: raw}
	items := gjson.GetBytes(raw, "items")
	if !items.IsArray() {
		return resp
	}
	items.ForEach(func(_, item gjson.Result) bool {
		resp.Items = append(resp.Items, Article{
			Date:  stringField(item, "date"),
			Title: stringField(item, "title"),
			URL:   stringField(item, "url"),
		})
		return true
	})
	return resp
}

func stringField(item gjson.Result, key string) string {
	if !item.IsObject() {
		return ""
	}
	return item.Get(key).String()
}

func errorMessage(raw json.RawMessage, status int) string {
	msg := gjson.GetBytes(raw, "message")
	if msg.Exists() && msg.Type != gjson.Null {
		return msg.String()
	}
	return fmt.Sprintf("HTTP %d", status)
}
