package buildinfo

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"toolkit/core/failure"
)

// DefaultVersion is reported when no version is stamped or embedded.
const DefaultVersion = "0.0.0.0"

// BuildNumberLayout formats build numbers as yyyyMMdd.
const BuildNumberLayout = "20060102"

// version is set through -ldflags.
var version string

var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Version returns the process version as major.minor.build.revision.
func Version() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if v, ok := normalize(bi.Main.Version); ok {
			return v
		}
	}
	return DefaultVersion
}

// normalize turns a module version such as v1.2.3 into 1.2.3.0.
func normalize(v string) (string, bool) {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return "", false
	}
	for _, p := range parts {
		if _, err := strconv.ParseUint(p, 10, 32); err != nil {
			return "", false
		}
	}
	return v + ".0", true
}

// BuildNumber maps a major.minor.build.revision version to a date: one day
// per build and two seconds per revision past 2000-01-01, formatted yyyyMMdd.
func BuildNumber(v string) (string, error) {
	const op = "buildinfo.BuildNumber"

	parts := strings.Split(v, ".")
	if len(parts) != 4 {
		return "", failure.Newf(failure.ErrInvalidFormat, op, v, "want 4 components, got %d", len(parts))
	}
	nums := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return "", failure.New(failure.ErrInvalidFormat, op, v, err)
		}
		nums[i] = int64(n)
	}

	at := epoch.AddDate(0, 0, int(nums[2])).Add(time.Duration(nums[3]) * 2 * time.Second)
	return at.Format(BuildNumberLayout), nil
}

// ExecutableDir returns the directory holding the running executable.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// BaseDir returns the working directory the process resolves relative
// paths against.
func BaseDir() (string, error) {
	return os.Getwd()
}
