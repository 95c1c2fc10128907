package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseMenuChoice(t *testing.T) {
	tests := []struct {
		in     string
		want   menuChoice
		wantOK bool
	}{
		{"1", menuAdd, true},
		{" 2 ", menuView, true},
		{"3", menuEdit, true},
		{"4", menuDelete, true},
		{"5\r", menuExit, true},
		{"0", 0, false},
		{"6", 0, false},
		{"", 0, false},
		{"one", 0, false},
		{"1.0", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseMenuChoice(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func Test_parseID(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{"  42 ", 42, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
		{"3a", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseID(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
