package contacts

import "strings"

// Directory is an in-memory contact book, loaded from config. It backs the
// loopback contact service used when no device-side directory is attached.
type Directory struct {
	entries map[string]map[string]string
}

// NewDirectory creates a directory from a name -> address-type -> address map.
func NewDirectory(entries map[string]map[string]string) *Directory {
	if entries == nil {
		entries = make(map[string]map[string]string)
	}
	return &Directory{entries: entries}
}

// Find returns candidates whose name contains the query, case-insensitively.
// Exact name matches sort first so they win candidate selection.
func (d *Directory) Find(query string) Results {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var exact, partial Results
	for name, addrs := range d.entries {
		lower := strings.ToLower(name)
		switch {
		case lower == query:
			exact = append(exact, Candidate{Name: name, Addresses: addrs})
		case strings.Contains(lower, query):
			partial = append(partial, Candidate{Name: name, Addresses: addrs})
		}
	}
	return append(exact, partial...)
}
