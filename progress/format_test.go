// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"negative clamps", -time.Second, "0s"},
		{"sub-second", 400 * time.Millisecond, "0s"},
		{"seconds", 45 * time.Second, "45s"},
		{"minutes", 90 * time.Second, "1m 30s"},
		{"hours", time.Hour + 61*time.Minute, "2h 1m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatDuration(tc.in))
		})
	}
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "5", formatUnits(5))
	assert.Equal(t, "0", formatUnits(0))
	assert.Equal(t, "2.50", formatUnits(2.5))
	assert.Equal(t, "1024", formatUnits(1024))
}
