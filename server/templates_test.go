package server

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	initials := templateFuncs["initials"].(func(string) string)

	tests := []struct {
		name     string
		expected string
	}{
		{"Jane Doe", "JD"},
		{"jane", "J"},
		{"Jane van der Berg", "JB"},
		{"", "?"},
		{"   ", "?"},
		{"élise durand", "ÉD"},
		{"山田 太郎", "山太"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := initials(tt.name)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
