package models

import (
	"errors"
	"fmt"
)

// ToolError is the only failure type that crosses a tool boundary.
// Tools never leak raw panics or transport errors to their callers;
// they wrap them in a ToolError with a human-readable message.
type ToolError struct {
	Tool    string `json:"tool,omitempty"`
	Message string `json:"error"`
}

func (e *ToolError) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("%s: %s", e.Tool, e.Message)
	}
	return e.Message
}

// NewToolError builds a ToolError for the named tool.
func NewToolError(tool, format string, args ...any) *ToolError {
	return &ToolError{Tool: tool, Message: fmt.Sprintf(format, args...)}
}

// AsToolError unwraps err into a *ToolError if one is in its chain.
func AsToolError(err error) (*ToolError, bool) {
	var te *ToolError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
