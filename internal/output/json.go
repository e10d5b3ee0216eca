package output

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/claimit/claimit/internal/calculation"
)

// FormatJSON renders the estimate result as indented JSON for
// scripting against the CLI.
func FormatJSON(result calculation.EstimateResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data), nil
}
