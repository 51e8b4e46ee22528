// Package namegen produces plausible person names from a bundled
// census-derived corpus, optionally overridden by one-column CSV files.
package namegen

import (
	"embed"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

//go:embed data/first_names.txt data/last_names.txt
var corpus embed.FS

// Provider samples full names. It holds no random state of its own; the
// caller supplies the rand source so runs stay reproducible.
type Provider struct {
	first []string
	last  []string
}

// New returns a provider backed by the embedded corpus.
func New() *Provider {
	return &Provider{
		first: mustLoadEmbedded("data/first_names.txt"),
		last:  mustLoadEmbedded("data/last_names.txt"),
	}
}

// NewFromCSV loads first and last names from CSV files with a single
// "name" column, matching the corpus files the original dataset shipped.
func NewFromCSV(firstPath, lastPath string) (*Provider, error) {
	first, err := loadCSV(firstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load first names: %w", err)
	}
	last, err := loadCSV(lastPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load last names: %w", err)
	}
	return &Provider{first: first, last: last}, nil
}

// FullName returns "First Last".
func (p *Provider) FullName(r *rand.Rand) string {
	return p.first[r.Intn(len(p.first))] + " " + p.last[r.Intn(len(p.last))]
}

// Split breaks a full name into first and last parts. Last may contain
// spaces when the corpus carries compound surnames.
func Split(fullName string) (first, last string) {
	parts := strings.SplitN(fullName, " ", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func mustLoadEmbedded(path string) []string {
	data, err := corpus.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("embedded name corpus missing: %v", err))
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names
}

func loadCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		value := strings.TrimSpace(record[0])
		// Skip a "name" header row.
		if i == 0 && strings.EqualFold(value, "name") {
			continue
		}
		if value != "" {
			names = append(names, value)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no names found in %s", path)
	}
	return names, nil
}
