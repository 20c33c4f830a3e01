package run

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Envelope wraps a result for output with the run's URL and timestamp.
type Envelope struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	URL       string `json:"url" yaml:"url"`
	Result    any    `json:"result" yaml:"result"`
}

func NewEnvelope(url string, result any) *Envelope {
	return &Envelope{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       url,
		Result:    result,
	}
}

// Render serializes the envelope as indented JSON or YAML.
func (e *Envelope) Render(format string) ([]byte, error) {
	switch format {
	case "", "json":
		data, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
