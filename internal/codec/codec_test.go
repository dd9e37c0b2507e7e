package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cactus/internal/codec"
)

type record struct {
	Name  string    `json:"name" yaml:"name"`
	Count int       `json:"count" yaml:"count"`
	When  time.Time `json:"when" yaml:"when"`
}

func TestByName(t *testing.T) {
	for name, want := range map[string]codec.Codec{
		"":     codec.JSON,
		"json": codec.JSON,
		"JSON": codec.JSON,
		"yaml": codec.YAML,
		"yml":  codec.YAML,
	} {
		got, err := codec.ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want.Name(), got.Name(), name)
	}

	_, err := codec.ByName("toml")
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	in := record{Name: "cactus", Count: 3, When: time.Date(2024, 5, 6, 7, 8, 9, 10, time.UTC)}

	for _, c := range []codec.Codec{codec.JSON, codec.YAML} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(in)
			require.NoError(t, err)

			var out record
			require.NoError(t, c.Unmarshal(b, &out))
			assert.Equal(t, in.Name, out.Name)
			assert.Equal(t, in.Count, out.Count)
			assert.True(t, in.When.Equal(out.When))
		})
	}
}

func TestCodecs_StrictTypes(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON, codec.YAML} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal("not a number")
			require.NoError(t, err)

			var n int
			assert.Error(t, c.Unmarshal(b, &n))
		})
	}
}
