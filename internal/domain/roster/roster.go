// Package roster provides the seed catalog of activities the registry is
// populated with at startup.
package roster

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mergington/activities/internal/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed activities.yaml
var embedded []byte

// Sentinel kinds for roster errors.
var (
	ErrParse   = errors.New("roster parse failed")
	ErrInvalid = errors.New("invalid roster")
)

// Roster maps activity name to its seed record.
type Roster map[string]model.Activity

// Default returns the embedded seed catalog.
func Default() (Roster, error) {
	return parse(embedded)
}

// FromFile loads an operator-supplied roster file, replacing the embedded
// catalog entirely.
func FromFile(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(r) == 0 {
		return nil, fmt.Errorf("%w: no activities defined", ErrInvalid)
	}
	for name, activity := range r {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: empty activity name", ErrInvalid)
		}
		if err := activity.Validate(); err != nil {
			return nil, fmt.Errorf("%w: activity %q: %w", ErrInvalid, name, err)
		}
	}
	return r, nil
}
