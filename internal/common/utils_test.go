package common

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://example.com/list", "https://example.com/list"},
		{"whitespace", "  https://example.com/list \n", "https://example.com/list"},
		{"markdown link", "[awesome go](https://github.com/avelino/awesome-go)", "https://github.com/avelino/awesome-go"},
		{"trailing comma", "https://example.com/list,", "https://example.com/list"},
		{"wrapping parens", "(https://example.com/list)", "https://example.com/list"},
		{"angle brackets", "<https://example.com/list>", "https://example.com/list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://github.com/avelino/awesome-go",
		"http://localhost:8080/list",
		" https://example.com/path?q=1 ",
	}
	for _, u := range valid {
		if _, err := ValidateURL(u); err != nil {
			t.Errorf("ValidateURL(%q) error = %v, want nil", u, err)
		}
	}

	invalid := []string{
		"",
		"ftp://example.com/file",
		"not-a-url",
		"https://exa mple.com",
		"https://example.com{}/x",
	}
	for _, u := range invalid {
		if _, err := ValidateURL(u); err == nil {
			t.Errorf("ValidateURL(%q) error = nil, want error", u)
		}
	}
}
