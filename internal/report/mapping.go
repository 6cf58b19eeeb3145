package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// FunctionStatus marks how far one legacy function's port has been verified.
type FunctionStatus string

const (
	StatusOK   FunctionStatus = "ok"
	StatusDiff FunctionStatus = "diff"
	StatusTodo FunctionStatus = "todo"
	StatusSkip FunctionStatus = "skip"
)

var statusIcons = map[FunctionStatus]string{
	StatusOK:   "✅",
	StatusDiff: "⚠️",
	StatusTodo: "❌",
	StatusSkip: "-",
}

// Icon returns the report marker for a status, empty for unknown values.
func (s FunctionStatus) Icon() string {
	return statusIcons[s]
}

// FunctionMapping ties one legacy function to its ported counterpart.
type FunctionMapping struct {
	Ported string         `json:"ported"`
	File   string         `json:"file,omitempty"`
	Status FunctionStatus `json:"status"`
	Note   string         `json:"note,omitempty"`
}

// ReverseMapping ties one ported function back to its legacy origin.
type ReverseMapping struct {
	Legacy string         `json:"legacy"`
	Status FunctionStatus `json:"status"`
}

// TableRefs marks which pipeline references a database table.
type TableRefs struct {
	Legacy bool `json:"legacy"`
	Ported bool `json:"ported"`
}

// MappingDoc is the static migration map maintained alongside the port.
// The report treats it as read-only input; this tool never edits it.
type MappingDoc struct {
	LegacyToPorted map[string]map[string]FunctionMapping `json:"legacy_to_ported"`
	PortedToLegacy map[string]map[string]ReverseMapping  `json:"ported_to_legacy"`
	Tables         map[string]TableRefs                  `json:"tables"`
}

// LoadMappingDoc reads and decodes the mapping JSON file.
func LoadMappingDoc(path string) (*MappingDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}
	var doc MappingDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode mapping file %s: %w", path, err)
	}
	return &doc, nil
}
