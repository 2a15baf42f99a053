package bytesize

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ByteSize is a count of bytes.
type ByteSize uint64

const (
	B  ByteSize = 1
	KB          = B << 10
	MB          = KB << 10
	GB          = MB << 10
	TB          = GB << 10
	PB          = TB << 10
	EB          = PB << 10
)

// Units holds the unit suffixes, indexed by magnitude.
var Units = [...]string{"bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Zero is the rendering of a zero byte count.
const Zero = "0.0 bytes"

// HumanSize formats n for American English, ignoring its sign.
func HumanSize(n int64) string {
	return Format(n, language.AmericanEnglish)
}

// Format formats n using the number conventions of tag, ignoring its sign.
func Format(n int64, tag language.Tag) string {
	size := abs(n)
	if size == 0 {
		return Zero
	}
	mag := Magnitude(size)
	value := float64(size) / float64(uint64(1)<<(10*mag))
	return message.NewPrinter(tag).Sprintf("%.2f %s", value, Units[mag])
}

// Magnitude returns floor(log1024(size)), clamped to the last unit.
func Magnitude(size uint64) int {
	mag := 0
	for size >= 1024 && mag < len(Units)-1 {
		size >>= 10
		mag++
	}
	return mag
}

// abs handles math.MinInt64 through unsigned negation.
func abs(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}
