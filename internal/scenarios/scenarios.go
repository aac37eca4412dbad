// Package scenarios embeds the canonical CMM report fixtures: one in-tolerance
// part and one part per dominant defect signature.
package scenarios

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.txt
var scenarioFS embed.FS

// ErrNotFound is returned by Load for an unknown scenario name.
var ErrNotFound = errors.New("scenario not found")

// Load returns the raw report text of the named scenario.
func Load(name string) (string, error) {
	data, err := scenarioFS.ReadFile(name + ".txt")
	if err != nil {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(List(), ", "))
	}
	return string(data), nil
}

// List returns the names of all embedded scenarios, sorted.
func List() []string {
	entries, _ := scenarioFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
		}
	}
	sort.Strings(names)
	return names
}
