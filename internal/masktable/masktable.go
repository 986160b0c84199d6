// Package masktable holds the immutable mapping from (device, security level) to a 16-byte mask.
//
// A table is parsed once from line-oriented text:
//
//	# comment
//	ECU1 1 = 112233445566778899aabbccddeeff00
//
// and is safe for concurrent use afterwards, since nothing mutates it.
package masktable

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/idelchi/seed2key/internal/hexcodec"
)

// MaskSize is the length of every mask in bytes.
const MaskSize = 16

//go:embed ecu_mask.txt
var defaultTable []byte

type entry struct {
	device Device
	level  Level
}

// Table maps (Device, Level) pairs to masks.
type Table struct {
	masks    map[entry][MaskSize]byte
	devices  []Device
	levels   []Level
	byDevice map[Device][]Level
}

// Default parses the table embedded in the binary.
func Default() (*Table, error) {
	table, err := Parse(bytes.NewReader(defaultTable))
	if err != nil {
		return nil, fmt.Errorf("parsing embedded mask table: %w", err)
	}

	return table, nil
}

// Load reads and parses a table file. An empty path selects the embedded table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}

	file, err := os.Open(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("opening mask table: %w", err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing mask table %q: %w", path, err)
	}

	return table, nil
}

// Parse builds a table from its text form. Every malformed line, duplicate pair,
// or an input without entries yields a *ConfigError.
//
//nolint:cyclop
func Parse(reader io.Reader) (*Table, error) {
	const fields = 4

	table := &Table{
		masks:    make(map[entry][MaskSize]byte),
		byDevice: make(map[Device][]Level),
	}

	scanner := bufio.NewScanner(reader)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		parts := strings.Fields(text)
		if len(parts) != fields || parts[2] != "=" {
			return nil, &ConfigError{Line: line, Reason: "want <device> <level> = <mask>"}
		}

		device := Device(parts[0])

		level, err := ParseLevel(parts[1])
		if err != nil {
			return nil, &ConfigError{Line: line, Reason: err.Error()}
		}

		mask, err := hexcodec.DecodeFixed(parts[3], MaskSize)
		if err != nil {
			return nil, &ConfigError{Line: line, Reason: "mask: " + maskReason(err)}
		}

		key := entry{device: device, level: level}
		if _, ok := table.masks[key]; ok {
			return nil, &ConfigError{
				Line:   line,
				Reason: fmt.Sprintf("duplicate entry for device %q level %d", device, level),
			}
		}

		table.masks[key] = [MaskSize]byte(mask)
		table.byDevice[device] = append(table.byDevice[device], level)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mask table: %w", err)
	}

	if len(table.masks) == 0 {
		return nil, &ConfigError{Reason: "no entries"}
	}

	table.index()

	return table, nil
}

// index computes the sorted device and level enumerations.
func (t *Table) index() {
	seen := make(map[Level]struct{})

	for device, levels := range t.byDevice {
		slices.Sort(levels)

		t.devices = append(t.devices, device)

		for _, level := range levels {
			if _, ok := seen[level]; !ok {
				seen[level] = struct{}{}
				t.levels = append(t.levels, level)
			}
		}
	}

	slices.Sort(t.devices)
	slices.Sort(t.levels)
}

// Lookup returns a copy of the mask for the pair, or false if the table has no entry for it.
func (t *Table) Lookup(device Device, level Level) ([]byte, bool) {
	mask, ok := t.masks[entry{device: device, level: level}]
	if !ok {
		return nil, false
	}

	return mask[:], true
}

// Devices returns every device in the table, sorted.
func (t *Table) Devices() []Device {
	return slices.Clone(t.devices)
}

// Levels returns every security level appearing in the table, sorted.
func (t *Table) Levels() []Level {
	return slices.Clone(t.levels)
}

// LevelsFor returns the sorted levels configured for device.
func (t *Table) LevelsFor(device Device) []Level {
	return slices.Clone(t.byDevice[device])
}

// HasDevice reports whether device appears in the table.
func (t *Table) HasDevice(device Device) bool {
	_, ok := t.byDevice[device]

	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.masks)
}

func maskReason(err error) string {
	switch {
	case errors.Is(err, hexcodec.ErrInvalidLength):
		return fmt.Sprintf("must be %d bytes", MaskSize)
	default:
		return "must be hex encoded"
	}
}
