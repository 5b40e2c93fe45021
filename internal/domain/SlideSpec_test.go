package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Lines
		wantErr  bool
	}{
		{
			name:     "String única vira lista de um elemento",
			input:    `"apenas uma linha"`,
			expected: Lines{"apenas uma linha"},
		},
		{
			name:     "Lista de strings é preservada",
			input:    `["primeira", "segunda"]`,
			expected: Lines{"primeira", "segunda"},
		},
		{
			name:     "Null vira lista vazia",
			input:    `null`,
			expected: nil,
		},
		{
			name:    "Número é rejeitado",
			input:   `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines Lines
			err := json.Unmarshal([]byte(tt.input), &lines)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestTextValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TextValue
	}{
		{name: "Número inteiro vira texto", input: `12345`, expected: "12345"},
		{name: "String é preservada", input: `"abc-9"`, expected: "abc-9"},
		{name: "Null vira vazio", input: `null`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TextValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestSlideType_Known(t *testing.T) {
	for _, known := range []SlideType{
		SlideTitle, SlideContent, SlideBlank, SlideVisualContent,
		SlideMetricsDashboard, SlideSectionHeader, SlideComparison, SlideTwoColumn,
	} {
		assert.True(t, known.Known(), string(known))
	}

	assert.False(t, SlideType("pie_chart").Known())
	assert.False(t, SlideType("").Known())
}

func TestSlideSpec_UnmarshalPreservaOverrides(t *testing.T) {
	input := `{
		"type": "content",
		"title": "Resultados",
		"content": "linha única",
		"auto_background": false,
		"color_scheme": "ocean"
	}`

	var spec SlideSpec
	require.NoError(t, json.Unmarshal([]byte(input), &spec))

	assert.Equal(t, SlideContent, spec.Type)
	assert.Equal(t, Lines{"linha única"}, spec.Content)
	require.NotNil(t, spec.AutoBackground)
	assert.False(t, *spec.AutoBackground)
	assert.Nil(t, spec.AutoLogo)
	assert.Equal(t, "ocean", spec.ColorScheme)
}
