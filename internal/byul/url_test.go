package byul

import "testing"

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://h/api/", "/news", "https://h/api/news"},
		{"https://h/api", "news", "https://h/api/news"},
		{"https://h/api", "/news", "https://h/api/news"},
		{"https://h/api/", "news", "https://h/api/news"},
		{"https://h/api//", "//news", "https://h/api/news"},
		{"https://api.byul.ai/api/v2", "/news", "https://api.byul.ai/api/v2/news"},
		{"https://h", "/news", "https://h/news"},
	}
	for _, tt := range tests {
		if got := JoinURL(tt.base, tt.path); got != tt.want {
			t.Errorf("JoinURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}
