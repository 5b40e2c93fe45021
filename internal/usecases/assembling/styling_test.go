package assembling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/feedmob-reporting/internal/domain"
)

func TestApplySixBySix(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "Lista curta passa intacta",
			input:    []string{"um", "dois"},
			expected: []string{"um", "dois"},
		},
		{
			name: "Mais de seis linhas corta em seis",
			input: []string{
				"item 1", "item 2", "item 3", "item 4",
				"item 5", "item 6", "item 7", "item 8",
			},
			expected: []string{"item 1", "item 2", "item 3", "item 4", "item 5", "item 6"},
		},
		{
			name:     "Linha longa corta em seis palavras com reticências",
			input:    []string{"one two three four five six seven eight"},
			expected: []string{"one two three four five six..."},
		},
		{
			name:     "Linha de exatamente seis palavras não ganha reticências",
			input:    []string{"one two three four five six"},
			expected: []string{"one two three four five six"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, applySixBySix(tt.input))
		})
	}
}

func TestApplySixBySix_SempreNoMaximoSeis(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("linha %d", i))
	}

	out := applySixBySix(lines)
	require.Len(t, out, 6)
}

func TestClassifyBullet(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		line     string
		expected domain.Emphasis
	}{
		{
			name:     "Primeira linha sempre recebe ênfase alta",
			index:    0,
			line:     "uma linha qualquer",
			expected: domain.EmphasisHigh,
		},
		{
			name:     "Verbo de ação eleva para média",
			index:    2,
			line:     "Increase market share in LATAM",
			expected: domain.EmphasisMedium,
		},
		{
			name:     "Valor monetário eleva para média",
			index:    1,
			line:     "Budget of $ 1,200 approved",
			expected: domain.EmphasisMedium,
		},
		{
			name:     "Percentual eleva para média",
			index:    3,
			line:     "Churn fell to 2.5%",
			expected: domain.EmphasisMedium,
		},
		{
			name:     "Número sem moeda ou percentual também eleva para média",
			index:    2,
			line:     "Signed 14 new partners",
			expected: domain.EmphasisMedium,
		},
		{
			name:     "Linha comum fica normal",
			index:    4,
			line:     "Notes from the last sync",
			expected: domain.EmphasisNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyBullet(tt.index, tt.line))
		})
	}
}

func TestEmphasisStyle(t *testing.T) {
	scheme, _ := domain.LookupColorScheme("feedmob")

	high := domain.EmphasisHigh.Style()
	assert.Equal(t, 20, high.SizePt)
	assert.True(t, high.Bold)
	assert.Equal(t, scheme.Primary, domain.EmphasisHigh.Color(scheme))

	medium := domain.EmphasisMedium.Style()
	assert.Equal(t, 18, medium.SizePt)
	assert.True(t, medium.Bold)
	assert.Equal(t, scheme.Secondary, domain.EmphasisMedium.Color(scheme))

	normal := domain.EmphasisNormal.Style()
	assert.Equal(t, 16, normal.SizePt)
	assert.False(t, normal.Bold)
	assert.Equal(t, scheme.Text, domain.EmphasisNormal.Color(scheme))
}
