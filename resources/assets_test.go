package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedResourcesAreCached(t *testing.T) {
	first, err := Icon("app.svg")
	require.NoError(t, err)
	second, err := Icon("app.svg")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Contains(t, string(first.Content()), "<svg")

	background := MustBackground("baize.svg")
	assert.Equal(t, "backgrounds/baize.svg", background.Name())
}

func TestMissingResourceReturnsError(t *testing.T) {
	_, err := Icon("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustBackground("missing.svg") })
}
