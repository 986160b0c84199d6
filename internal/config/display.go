package config

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	mask "github.com/showa-93/go-mask"
)

// Display writes the configuration as YAML with key material redacted.
func (c Config) Display(w io.Writer) error {
	redacted, err := mask.Mask(c)
	if err != nil {
		return fmt.Errorf("redacting configuration: %w", err)
	}

	out, err := yaml.Marshal(redacted)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}
