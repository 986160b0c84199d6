// Package requests loads batch derivation requests from JSONC files.
package requests

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"
)

// Request is one entry of a batch file. Level is kept as text and parsed by the caller
// so that both `1` and `"1"` are accepted.
type Request struct {
	Seed  string      `json:"seed"`
	Key   string      `json:"key,omitempty"`
	ECU   string      `json:"ecu"`
	Level json.Number `json:"level,omitempty"`
}

// Load reads a JSONC file holding an array of requests.
func Load(path string) ([]Request, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading requests file %q: %w", path, err)
	}

	reqs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing requests file %q: %w", path, err)
	}

	return reqs, nil
}

// Read is Load for an arbitrary reader.
func Read(reader io.Reader) ([]Request, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading requests: %w", err)
	}

	return Parse(data)
}

// Parse decodes JSONC data. Comments and trailing commas are allowed.
func Parse(data []byte) ([]Request, error) {
	clean := jsonc.ToJSONInPlace(data)

	var reqs []Request
	if err := json.Unmarshal(clean, &reqs); err != nil {
		return nil, err //nolint:wrapcheck // callers add context
	}

	return reqs, nil
}
