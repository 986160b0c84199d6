package masktable

import (
	"fmt"
	"strconv"
)

// Device identifies a target ECU. Legal values are the device tokens present in a Table.
type Device string

// Level is a security access level. Legal values are the level tokens present in a Table.
type Level uint8

// ParseLevel parses a decimal security level token.
func ParseLevel(token string) (Level, error) {
	n, err := strconv.ParseUint(token, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid security level %q: must be an integer in 0..255", token)
	}

	return Level(n), nil
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}
