package obras

import (
	"encoding/json"
	"fmt"
)

// ExportJSON encodes records as an indented JSON array. NULL fields encode
// as JSON null.
func ExportJSON(obras []Obra) ([]byte, error) {
	if obras == nil {
		obras = []Obra{}
	}
	data, err := json.MarshalIndent(obras, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return append(data, '\n'), nil
}
