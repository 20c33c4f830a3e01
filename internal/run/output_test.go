package run

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/awesome-list-agent/models"
)

func sampleResult() *models.AgentResult {
	return &models.AgentResult{
		Status: "success",
		URL:    "https://example.com/list",
		Metadata: models.ResultMetadata{
			TotalItems:     12,
			ProcessingTime: "1.2s",
			TraceID:        "trace-1",
		},
	}
}

func TestRenderJSON(t *testing.T) {
	env := NewEnvelope("https://example.com/list", sampleResult())
	data, err := env.Render("json")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded struct {
		Timestamp string             `json:"timestamp"`
		URL       string             `json:"url"`
		Result    models.AgentResult `json:"result"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.URL != "https://example.com/list" {
		t.Errorf("url = %q", decoded.URL)
	}
	if decoded.Result.Metadata.TotalItems != 12 {
		t.Errorf("total_items = %d, want 12", decoded.Result.Metadata.TotalItems)
	}
	if decoded.Timestamp == "" {
		t.Error("timestamp is empty")
	}
}

func TestRenderYAML(t *testing.T) {
	env := NewEnvelope("https://example.com/list", sampleResult())
	data, err := env.Render("yaml")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["url"] != "https://example.com/list" {
		t.Errorf("url = %v", decoded["url"])
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	env := NewEnvelope("https://example.com", sampleResult())
	if _, err := env.Render("xml"); err == nil {
		t.Fatal("Render(xml) error = nil, want error")
	}
}

func TestRenderDefaultsToJSON(t *testing.T) {
	env := NewEnvelope("https://example.com", sampleResult())
	data, err := env.Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		t.Errorf("default output is not JSON: %q", data[:20])
	}
}
