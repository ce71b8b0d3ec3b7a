// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package slug

import (
	"context"
	"testing"
)

func TestMake(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Acme Corp", "acme-corp"},
		{"a", "a"},
		{"  spaced   out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"unicode Ünïcode", "unicode-n-code"},
		{"???", "untitled"},
		{"edge.case_42", "edge-case-42"},
	}

	for _, tc := range testCases {
		if got := Make(tc.in); got != tc.expected {
			t.Fatalf("Make(%q): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{"acme": true, "acme-2": true}
	exists := func(_ context.Context, s string) (bool, error) {
		return taken[s], nil
	}

	got, err := Unique(context.Background(), "Acme", exists)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "acme-3" {
		t.Fatalf("expected acme-3, got %q", got)
	}

	got, err = Unique(context.Background(), "Fresh Name", exists)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fresh-name" {
		t.Fatalf("expected fresh-name, got %q", got)
	}
}
