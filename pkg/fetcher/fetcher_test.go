package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/awesome-list-agent/models"
)

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := New(5 * time.Second)
	defer f.Close()

	body, contentType, err := f.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !strings.Contains(string(body), "hello") {
		t.Errorf("Get() body = %q, want it to contain %q", body, "hello")
	}
	if !strings.HasPrefix(contentType, "text/html") {
		t.Errorf("Get() contentType = %q, want text/html prefix", contentType)
	}
}

func TestGetNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := New(5 * time.Second)
	defer f.Close()

	_, _, err := f.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Get() error = nil, want error for 404")
	}
	if _, ok := models.AsToolError(err); !ok {
		t.Errorf("Get() error = %v, want *models.ToolError", err)
	}
}

func TestGetBadScheme(t *testing.T) {
	f := New(0)
	defer f.Close()

	for _, url := range []string{"ftp://example.com/list", "file:///etc/passwd", "not a url://"} {
		if _, _, err := f.Get(context.Background(), url); err == nil {
			t.Errorf("Get(%q) error = nil, want error", url)
		}
	}
}

func TestGetContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	f := New(5 * time.Second)
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, _, err := f.Get(ctx, srv.URL); err == nil {
		t.Fatal("Get() error = nil, want context deadline error")
	}
}
