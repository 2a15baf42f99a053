package buildinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolkit/core/failure"
)

func TestBuildNumber(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"Epoch", "1.0.0.0", "20000101"},
		{"One Day", "1.0.1.0", "20000102"},
		{"Leap Year", "1.0.366.0", "20010101"},
		{"Revision Under A Day", "1.0.0.43199", "20000101"},
		{"Revision Rolls Day", "1.0.0.43200", "20000102"},
		{"Max Components", "65535.65535.65535.65535", "21790607"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildNumber(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildNumber_Invalid(t *testing.T) {
	for _, v := range []string{"", "1.0.0", "1.0.0.0.0", "1.a.0.0", "1.0.-1.0", "1.0.70000.0"} {
		_, err := BuildNumber(v)
		assert.ErrorIs(t, err, failure.ErrInvalidFormat, v)
	}
}

func TestVersion_Stamped(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "2.1.300.7"
	assert.Equal(t, "2.1.300.7", Version())
}

func TestVersion_Fallback(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = ""
	v := Version()
	_, err := BuildNumber(v)
	assert.NoError(t, err, "fallback version %q must be well-formed", v)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"v1.2.3", "1.2.3.0", true},
		{"v0.4.0-20240101000000-abcdef123456", "0.4.0.0", true},
		{"v1.2.3+incompatible", "1.2.3.0", true},
		{"(devel)", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := normalize(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDirs(t *testing.T) {
	exeDir, err := ExecutableDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(exeDir))

	base, err := BaseDir()
	require.NoError(t, err)
	wd, _ := os.Getwd()
	assert.Equal(t, wd, base)
}
