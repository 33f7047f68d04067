// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeDisabled(t *testing.T) {
	orig := enabled

	defer SetEnabled(orig)

	SetEnabled(false)
	assert.Equal(t, "hello", Colorize("hello", FgRed))
}

func TestColorizeEnabled(t *testing.T) {
	orig := enabled

	defer SetEnabled(orig)

	SetEnabled(true)

	tests := []struct {
		name  string
		in    string
		codes []Code
		want  string
	}{
		{
			name:  "single code",
			in:    "hello",
			codes: []Code{FgRed},
			want:  "\033[31mhello\033[0m",
		},
		{
			name:  "multiple codes",
			in:    "hello",
			codes: []Code{Bold, FgGreen},
			want:  "\033[1;32mhello\033[0m",
		},
		{
			name:  "no codes returns input",
			in:    "hello",
			codes: nil,
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Colorize(tt.in, tt.codes...))
		})
	}
}
