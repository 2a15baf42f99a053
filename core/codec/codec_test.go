package codec_test

import (
	"testing"

	"toolkit/core/codec"
	"toolkit/core/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{"xml", "application/xml"},
		{"Markup", "application/xml"},
		{"json", "application/json"},
		{"yml", "application/yaml"},
		{"binary", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := codec.ByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.contentType, c.ContentType())
		})
	}

	_, ok := codec.ByName("toml")
	assert.False(t, ok)
}

func TestCodec_Convert(t *testing.T) {
	var doc any
	require.NoError(t, codec.JSON.Unmarshal([]byte(`{"name":"lamp","tags":["a"]}`), &doc))

	out, err := codec.YAML.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "name: lamp\ntags:\n    - a\n", string(out))
}

func TestBinaryCodec_Unmarshal(t *testing.T) {
	in := account{Owner: "di", balance: 9}
	blob, err := codec.Binary.Marshal(in)
	require.NoError(t, err)

	var typed account
	require.NoError(t, codec.Binary.Unmarshal(blob, &typed))
	assert.Equal(t, in, typed)

	var loose any
	require.NoError(t, codec.Binary.Unmarshal(blob, &loose))
	assert.Equal(t, in, loose)

	err = codec.Binary.Unmarshal(blob, typed)
	assert.ErrorIs(t, err, failure.ErrDeserialization)
}
