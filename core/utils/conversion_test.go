package utils_test

import (
	"errors"
	"testing"

	"toolkit/core/failure"
	"toolkit/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"t", true},
		{"T", true},
		{"1", true},
		{"false", false},
		{"False", false},
		{"f", false},
		{"0", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := utils.ParseBool(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"yes", "no", " true", "2", "tru"} {
		t.Run("Invalid "+bad, func(t *testing.T) {
			_, err := utils.ParseBool(bad)
			assert.True(t, errors.Is(err, failure.ErrInvalidFormat))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    bool
		wantErr bool
	}{
		{"Bool", true, true, false},
		{"Int One", 1, true, false},
		{"Int Zero", int64(0), false, false},
		{"Uint8 One", uint8(1), true, false},
		{"Float One", 1.0, true, false},
		{"String", "t", true, false},
		{"Bytes", []byte("false"), false, false},
		{"Int Two", 2, false, true},
		{"Float Half", 0.5, false, true},
		{"Nil", nil, false, true},
		{"Struct", struct{}{}, false, true},
		{"Bad Token", "yes", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ToBool(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToInt(t *testing.T) {
	n, err := utils.ToInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = utils.ToInt("-7")
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	n, err = utils.ToInt("010")
	require.NoError(t, err)
	assert.Equal(t, 10, n, "strings are always base 10")

	n, err = utils.ToInt(3.9)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = utils.ToInt(true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = utils.ToInt("abc")
	assert.ErrorIs(t, err, failure.ErrInvalidFormat)

	_, err = utils.ToInt("1.5")
	assert.ErrorIs(t, err, failure.ErrInvalidFormat)

	_, err = utils.ToInt64("99999999999999999999")
	assert.ErrorIs(t, err, failure.ErrInvalidFormat)

	_, err = utils.ToInt64(struct{}{})
	assert.ErrorIs(t, err, failure.ErrInvalidFormat)
}

func TestToFloat(t *testing.T) {
	f, err := utils.ToFloat64("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	f, err = utils.ToFloat64(7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, f)

	_, err = utils.ToFloat64("2,5")
	assert.ErrorIs(t, err, failure.ErrInvalidFormat)

	f32, err := utils.ToFloat32(0.25)
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), f32)

	_, err = utils.ToFloat32(1e300)
	assert.ErrorIs(t, err, failure.ErrInvalidFormat)

	_, err = utils.ToFloat32("1e300")
	assert.ErrorIs(t, err, failure.ErrInvalidFormat)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", utils.ToString("abc"))
	assert.Equal(t, "abc", utils.ToString([]byte("abc")))
	assert.Equal(t, "12", utils.ToString(12))
	assert.Equal(t, "", utils.ToString(nil))
}

func TestParseGUID(t *testing.T) {
	id, err := utils.ParseGUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())

	_, err = utils.ParseGUID("not-a-guid")
	assert.ErrorIs(t, err, failure.ErrInvalidFormat)
}
