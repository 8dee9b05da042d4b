package contacts

import "testing"

func TestPhonePriority(t *testing.T) {
	tests := []struct {
		name      string
		addresses map[string]string
		want      string
		found     bool
	}{
		{
			name:      "mobile beats everything",
			addresses: map[string]string{"home": "111", "mobile": "222", "work": "333"},
			want:      "222",
			found:     true,
		},
		{
			name:      "work mobile beats home",
			addresses: map[string]string{"home": "111", "work mobile": "444"},
			want:      "444",
			found:     true,
		},
		{
			name:      "phone is last resort",
			addresses: map[string]string{"phone": "555"},
			want:      "555",
			found:     true,
		},
		{
			name:      "email only has no phone",
			addresses: map[string]string{"email": "a@b.com"},
			want:      "",
			found:     false,
		},
		{
			name:      "empty value is skipped",
			addresses: map[string]string{"mobile": "", "home": "111"},
			want:      "111",
			found:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Candidate{Name: "x", Addresses: tt.addresses}.Phone()
			if got != tt.want || ok != tt.found {
				t.Errorf("Phone() = %q, %v, want %q, %v", got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestCandidateEmail(t *testing.T) {
	c := Candidate{Addresses: map[string]string{"email": "a@b.com", "mobile": "222"}}
	addr, ok := c.Email()
	if !ok || addr != "a@b.com" {
		t.Errorf("Email() = %q, %v", addr, ok)
	}

	c = Candidate{Addresses: map[string]string{"mobile": "222"}}
	if _, ok := c.Email(); ok {
		t.Error("Email() found address on phone-only candidate")
	}
}

func TestResultsFirst(t *testing.T) {
	var empty Results
	if _, ok := empty.First(); ok {
		t.Error("First() on empty results reported a candidate")
	}

	r := Results{{Name: "alice"}, {Name: "bob"}}
	c, ok := r.First()
	if !ok || c.Name != "alice" {
		t.Errorf("First() = %q, %v, want alice", c.Name, ok)
	}
}

func TestDirectoryFind(t *testing.T) {
	dir := NewDirectory(map[string]map[string]string{
		"Bob":        {"mobile": "555-0001"},
		"Bobby Drop": {"mobile": "555-0002"},
		"Alice":      {"email": "alice@example.com"},
	})

	results := dir.Find("bob")
	if len(results) != 2 {
		t.Fatalf("got %d candidates, want 2", len(results))
	}
	// Exact name match must win candidate selection.
	if results[0].Name != "Bob" {
		t.Errorf("first candidate = %q, want Bob", results[0].Name)
	}

	if results := dir.Find("nobody"); len(results) != 0 {
		t.Errorf("got %d candidates for unknown name, want 0", len(results))
	}
	if results := dir.Find(""); len(results) != 0 {
		t.Errorf("got %d candidates for empty query, want 0", len(results))
	}
}
