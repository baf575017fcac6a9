package models

import (
	"strings"
	"testing"
)

func TestNewID_Shape(t *testing.T) {
	id := NewID()
	if !IsValidUUIDv4(id) {
		t.Fatalf("NewID produced non-v4 id %q", id)
	}
	if len(id) != 36 {
		t.Fatalf("expected 36-char id, got %d (%q)", len(id), id)
	}
}

func TestIsValidUUIDv4(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"canonical lower", "9b2d8f0a-3c41-4e7b-8f2a-1d9e6c3b5a70", true},
		{"canonical upper", "9B2D8F0A-3C41-4E7B-8F2A-1D9E6C3B5A70", true},
		{"variant 9", "9b2d8f0a-3c41-4e7b-9f2a-1d9e6c3b5a70", true},
		{"variant a", "9b2d8f0a-3c41-4e7b-af2a-1d9e6c3b5a70", true},
		{"variant b", "9b2d8f0a-3c41-4e7b-bf2a-1d9e6c3b5a70", true},
		{"empty", "", false},
		{"not a uuid", "hello", false},
		{"wrong version", "9b2d8f0a-3c41-1e7b-8f2a-1d9e6c3b5a70", false},
		{"wrong variant", "9b2d8f0a-3c41-4e7b-7f2a-1d9e6c3b5a70", false},
		{"missing group", "9b2d8f0a-3c41-4e7b-8f2a", false},
		{"no dashes", "9b2d8f0a3c414e7b8f2a1d9e6c3b5a70", false},
		{"trailing junk", "9b2d8f0a-3c41-4e7b-8f2a-1d9e6c3b5a70x", false},
		{"non-hex", "9b2d8f0g-3c41-4e7b-8f2a-1d9e6c3b5a70", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidUUIDv4(tc.input); got != tc.want {
				t.Fatalf("IsValidUUIDv4(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewID_ManyUniqueAndValid(t *testing.T) {
	const n = 1000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID()
		if !IsValidUUIDv4(id) {
			t.Fatalf("id %d (%q) is not a valid UUID v4", i, id)
		}
		lower := strings.ToLower(id)
		if _, dup := seen[lower]; dup {
			t.Fatalf("duplicate id %q on call %d", id, i)
		}
		seen[lower] = struct{}{}
	}
}
