package tools

import (
	"reflect"
	"testing"

	"github.com/byul-ai/byul-mcp/internal/format"
)

func TestParseNewsRequestStripsPresentationFields(t *testing.T) {
	req, err := ParseNewsRequest(map[string]any{
		ArgSymbol:        "AAPL",
		ArgLimit:         float64(5),
		ArgQuery:         "",
		ArgCategory:      nil,
		ArgFormat:        "text",
		ArgIncludeHeader: true,
	})
	if err != nil {
		t.Fatalf("ParseNewsRequest: %v", err)
	}
	want := map[string]string{"symbol": "AAPL", "limit": "5"}
	if got := req.Filter.Params(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Params() = %v, want %v", got, want)
	}
	if req.Format.Mode != format.ModeText || !req.Format.IncludeHeader {
		t.Fatalf("unexpected format options %+v", req.Format)
	}
}

func TestParseNewsURICoercesQueryStrings(t *testing.T) {
	args, err := ParseNewsURI("byul://news?limit=20&minImportance=7&includeHeader=true&format=markdown")
	if err != nil {
		t.Fatalf("ParseNewsURI: %v", err)
	}
	req, err := ParseNewsRequest(args)
	if err != nil {
		t.Fatalf("ParseNewsRequest: %v", err)
	}
	if req.Filter.Limit == nil || *req.Filter.Limit != 20 {
		t.Errorf("unexpected limit %v", req.Filter.Limit)
	}
	if req.Filter.MinImportance == nil || *req.Filter.MinImportance != 7 {
		t.Errorf("unexpected minImportance %v", req.Filter.MinImportance)
	}
	if !req.Format.IncludeHeader {
		t.Error("expected includeHeader true")
	}

	args, err = ParseNewsURI("byul://news?includeHeader=false&limit=")
	if err != nil {
		t.Fatalf("ParseNewsURI: %v", err)
	}
	req, err = ParseNewsRequest(args)
	if err != nil {
		t.Fatalf("ParseNewsRequest: %v", err)
	}
	if req.Format.IncludeHeader || req.Filter.Limit != nil {
		t.Errorf("unexpected request %+v", req)
	}
}

func TestParseNewsURIDecimalOnly(t *testing.T) {
	args, err := ParseNewsURI("byul://news?limit=010")
	if err != nil {
		t.Fatalf("ParseNewsURI: %v", err)
	}
	req, err := ParseNewsRequest(args)
	if err != nil {
		t.Fatalf("ParseNewsRequest: %v", err)
	}
	if got := req.Filter.Params()["limit"]; got != "10" {
		t.Fatalf("expected limit 10, got %q", got)
	}

	for _, uri := range []string{
		"byul://news?limit=0x10",
		"byul://news?limit=0b101",
		"byul://news?limit=1e1",
		"byul://news?minImportance=ten",
		"byul://news?includeHeader=1",
		"byul://news?includeHeader=T",
		"byul://news?includeHeader=yes",
	} {
		if _, err := ParseNewsURI(uri); err == nil {
			t.Errorf("ParseNewsURI(%q): expected error", uri)
		}
	}
}

func TestParseNewsRequestDefaults(t *testing.T) {
	req, err := ParseNewsRequest(nil)
	if err != nil {
		t.Fatalf("ParseNewsRequest: %v", err)
	}
	if req.Format.Mode != format.DefaultMode || req.Format.IncludeHeader {
		t.Errorf("unexpected defaults %+v", req.Format)
	}
	if len(req.Filter.Params()) != 0 {
		t.Errorf("expected no params, got %v", req.Filter.Params())
	}
}

func TestParseNewsRequestRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"limit too low", map[string]any{ArgLimit: float64(0)}},
		{"limit too high", map[string]any{ArgLimit: float64(101)}},
		{"limit fractional", map[string]any{ArgLimit: 2.5}},
		{"limit huge", map[string]any{ArgLimit: 1e20}},
		{"limit string", map[string]any{ArgLimit: "5"}},
		{"limit hex string", map[string]any{ArgLimit: "0x10"}},
		{"limit octal string", map[string]any{ArgLimit: "010"}},
		{"limit bool", map[string]any{ArgLimit: true}},
		{"importance too high", map[string]any{ArgMinImportance: float64(11)}},
		{"importance too low", map[string]any{ArgMinImportance: 0}},
		{"importance string", map[string]any{ArgMinImportance: "7"}},
		{"symbol wrong type", map[string]any{ArgSymbol: float64(1)}},
		{"unknown format", map[string]any{ArgFormat: "yaml"}},
		{"header string", map[string]any{ArgIncludeHeader: "true"}},
		{"header string one", map[string]any{ArgIncludeHeader: "1"}},
		{"header number", map[string]any{ArgIncludeHeader: float64(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseNewsRequest(tt.args); err == nil {
				t.Fatalf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseNewsURI(t *testing.T) {
	args, err := ParseNewsURI("byul://news?symbol=AAPL&limit=5&includeHeader=true&symbol=MSFT")
	if err != nil {
		t.Fatalf("ParseNewsURI: %v", err)
	}
	want := map[string]any{"symbol": "AAPL", "limit": 5, "includeHeader": true}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("ParseNewsURI() = %v, want %v", args, want)
	}

	args, err = ParseNewsURI("byul://news")
	if err != nil || len(args) != 0 {
		t.Fatalf("expected empty args, got %v (%v)", args, err)
	}

	if _, err := ParseNewsURI("byul://quotes?symbol=AAPL"); err == nil {
		t.Fatal("expected error for foreign uri")
	}
}
