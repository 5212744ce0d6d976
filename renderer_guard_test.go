package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSingleRenderer(t *testing.T) {
	app := newApp()

	ensureSingleRenderer(app, "points")
	ensureSingleRenderer(app, "points")

	tag, ok := Resource[RendererTag](app)
	require.True(t, ok)
	assert.Equal(t, "points", tag.Name)

	assert.PanicsWithValue(t, "multiple renderers installed: points and lines", func() {
		ensureSingleRenderer(app, "lines")
	})
}
