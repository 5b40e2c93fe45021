package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupColorScheme(t *testing.T) {
	scheme, ok := LookupColorScheme(DefaultColorScheme)
	require.True(t, ok)
	assert.Equal(t, "feedmob", scheme.Name)
	assert.NotEmpty(t, scheme.Primary)
	assert.NotEmpty(t, scheme.Background)

	_, ok = LookupColorScheme("neon")
	assert.False(t, ok)
}

func TestColorSchemeNames(t *testing.T) {
	names := ColorSchemeNames()

	assert.Equal(t, []string{"corporate", "feedmob", "forest", "midnight", "ocean", "sunset"}, names)
}

func TestColorScheme_AccentCicla(t *testing.T) {
	scheme, _ := LookupColorScheme("feedmob")

	assert.Equal(t, scheme.Accent1, scheme.Accent(0))
	assert.Equal(t, scheme.Accent2, scheme.Accent(1))
	assert.Equal(t, scheme.Accent3, scheme.Accent(2))
	assert.Equal(t, scheme.Accent1, scheme.Accent(3))
	assert.Equal(t, scheme.Accent3, scheme.Accent(5))
}
