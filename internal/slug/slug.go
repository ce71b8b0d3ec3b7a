// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"context"
	"fmt"
	"strings"
)

// Make lowercases the input and collapses every run outside [a-z0-9]
// into a single hyphen.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "untitled"
	}
	return s
}

// Unique derives a slug from name and suffixes it with a counter until
// exists stops reporting collisions.
func Unique(ctx context.Context, name string, exists func(ctx context.Context, slug string) (bool, error)) (string, error) {
	base := Make(name)

	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
