package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/akshaynair/blockbridge/core"
)

// Load decodes the capture collaborator's snapshot payload: a JSON array
// of element records in document order.
func Load(r io.Reader) ([]*core.ElementSnapshot, error) {
	var elements []*core.ElementSnapshot
	if err := json.NewDecoder(r).Decode(&elements); err != nil {
		return nil, fmt.Errorf("decoding snapshot JSON: %w", err)
	}
	return elements, nil
}
