package field

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff6030")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 1, G: float32(0x60) / 255, B: float32(0x30) / 255}, c)

	short, err := ParseColor("#f63")
	require.NoError(t, err)
	assert.Equal(t, "#ff6633", short.Hex())

	named, err := ParseColor("Navy")
	require.NoError(t, err)
	assert.Equal(t, "#000080", named.Hex())

	for _, bad := range []string{"", "#12345", "#gggggg", "not-a-color"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestLerp_Clamps(t *testing.T) {
	a := Color{0, 0, 0}
	b := Color{1, 0.5, 0.25}

	assert.Equal(t, a, Lerp(a, b, -1))
	assert.Equal(t, b, Lerp(a, b, 2))
	assert.Equal(t, Color{0.5, 0.25, 0.125}, Lerp(a, b, 0.5))
}

func TestColor_TextRoundTrip(t *testing.T) {
	var cfg struct {
		Inside Color `json:"inside"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"inside":"#1b3984"}`), &cfg))
	assert.Equal(t, "#1b3984", cfg.Inside.Hex())

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inside":"#1b3984"}`, string(out))
}
