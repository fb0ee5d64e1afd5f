package randchars

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

const (
	// maxBufLen is the maximum length of a temporary buffer for random bytes.
	maxBufLen = 2048

	// minRegenBufLen is the minimum length of temporary buffer for random bytes
	// to fill after the first rand.Read request didn't produce the full result.
	// If the initial buffer is smaller, this value is ignored.
	// Rationale: for performance, assume it's pointless to request fewer bytes from rand.Read.
	minRegenBufLen = 16

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256

	// maxWideValue is the maximum value of a two-byte word (2^16 - 1).
	maxWideValue = 65535

	// wideRange is the total number of possible two-byte word values (2^16).
	wideRange = 65536
)

// estimatedBufLen returns the estimated number of random bytes to request
// given that byte values greater than maxByte will be rejected.
func estimatedBufLen(need, maxByte int) int {
	return int(math.Ceil(float64(need) * (maxByteValue / float64(maxByte))))
}

// Draw returns a new random string of the provided length. Each position is
// an independent uniform pick from chars, so positions may repeat. The
// alphabet may contain duplicate bytes; the distribution is uniform over
// positions of chars, not over distinct characters.
func Draw(length int, chars []byte) string {
	return string(DrawBytes(length, chars))
}

// DrawBytes returns a new random byte slice of the provided length, each
// position an independent uniform pick from chars (maximum 65536 entries).
func DrawBytes(length int, chars []byte) []byte {
	if length == 0 {
		return nil
	}

	clen := len(chars)

	switch {
	case clen == 0 || clen > wideRange:
		panic("randchars: wrong charset length for DrawBytes")
	case clen == 1:
		out := make([]byte, length)
		for i := range out {
			out[i] = chars[0]
		}

		return out
	case clen > byteRange:
		return drawWide(length, chars)
	}

	maxRb := maxByteValue - (byteRange % clen)
	bufLen := estimatedBufLen(length, maxRb)
	if bufLen < length {
		bufLen = length
	}

	if bufLen > maxBufLen {
		bufLen = maxBufLen
	}

	buf := make([]byte, bufLen) // storage for random bytes
	out := make([]byte, length) // storage for result

	var i int // index in out
	for {
		if _, err := rand.Read(buf[:bufLen]); err != nil {
			panic("randchars: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf[:bufLen] {
			c := int(rb)
			if c > maxRb {
				// Skip this number to avoid modulo bias.
				continue
			}
			out[i] = chars[c%clen]
			i++
			if i == length {
				return out
			}
		}
		// Adjust new requested length, but no smaller than minRegenBufLen.
		bufLen = estimatedBufLen(length-i, maxRb)
		if bufLen < minRegenBufLen && minRegenBufLen < cap(buf) {
			bufLen = minRegenBufLen
		}
		if bufLen > maxBufLen {
			bufLen = maxBufLen
		}
	}
}

// drawWide handles alphabets larger than one byte can index by consuming two
// random bytes per candidate, with the same rejection rule scaled up.
func drawWide(length int, chars []byte) []byte {
	clen := len(chars)
	maxRw := maxWideValue - (wideRange % clen)

	buf := make([]byte, maxBufLen)
	out := make([]byte, length)

	var i int
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("randchars: error reading random bytes: " + err.Error())
		}

		for off := 0; off+2 <= len(buf); off += 2 {
			c := int(binary.BigEndian.Uint16(buf[off : off+2]))
			if c > maxRw {
				continue
			}
			out[i] = chars[c%clen]
			i++
			if i == length {
				return out
			}
		}
	}
}
