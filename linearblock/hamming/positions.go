package hamming

import (
	"fmt"
	"strings"
)

// Bits are indexed by hamming position. Position 0 holds the overall
// parity bit and positions 1..n are the numbered hamming positions.
type bits []uint8

// IndexOf maps a hamming position (0 being the overall parity bit) to the
// index of its character in a codeword string with n numbered positions.
// Codewords are written from position n down to position 1 with the overall
// parity bit last, which is simply positions n..0.
func IndexOf(position, n int) int {
	return n - position
}

// PositionOf is the inverse of IndexOf.
func PositionOf(index, n int) int {
	return n - index
}

func isParityPosition(p int) bool {
	return p > 0 && p&(p-1) == 0
}

func parseBit(ch byte) (uint8, bool) {
	switch ch {
	case '0':
		return 0, true
	case '1':
		return 1, true
	}
	return 0, false
}

// parse converts a codeword string into position ordered bits.
func (c *Code) parse(codeword string) (bits, error) {
	if len(codeword) != c.CodewordLength() {
		return nil, fmt.Errorf("%w: codeword length == %v required but found %v", ErrInvalidInput, c.CodewordLength(), len(codeword))
	}
	n := c.numbered()
	result := make(bits, n+1)
	for i := 0; i < len(codeword); i++ {
		b, ok := parseBit(codeword[i])
		if !ok {
			return nil, fmt.Errorf("%w: non-binary character %q at index %v", ErrInvalidInput, codeword[i], i)
		}
		result[PositionOf(i, n)] = b
	}
	return result, nil
}

func (b bits) String() string {
	n := len(b) - 1
	sb := strings.Builder{}
	sb.Grow(len(b))
	for i := 0; i <= n; i++ {
		sb.WriteByte('0' + b[PositionOf(i, n)])
	}
	return sb.String()
}

// check returns the parity of the positions covered by check i,
// that is every position with bit i set.
func (b bits) check(i int) uint8 {
	mask := 1 << i
	var v uint8
	for p := 1; p < len(b); p++ {
		if p&mask != 0 {
			v ^= b[p]
		}
	}
	return v
}

// overall is the even parity of the numbered positions.
func (b bits) overall() uint8 {
	var v uint8
	for p := 1; p < len(b); p++ {
		v ^= b[p]
	}
	return v
}
