package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name:     "Struct é serializada com indentação",
			input:    struct{ Name string `json:"name"` }{Name: "feedmob"},
			expected: "{\n\t\"name\": \"feedmob\"\n}",
		},
		{
			name:     "Bytes já serializados são apenas indentados",
			input:    []byte(`{"a":1,"b":"x"}`),
			expected: "{\n\t\"a\": 1,\n\t\"b\": \"x\"\n}",
		},
		{
			name:     "Valor não serializável resulta em string vazia",
			input:    make(chan int),
			expected: "",
		},
		{
			name:     "Bytes com JSON inválido resultam em string vazia",
			input:    []byte(`{"a":`),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrettyJson(tt.input))
		})
	}
}
