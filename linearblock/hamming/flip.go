package hamming

import "fmt"

// FlipBit returns a copy of codeword with the character at index inverted.
func FlipBit(codeword string, index int) (string, error) {
	return FlipBits(codeword, index)
}

// FlipBits returns a copy of codeword with every character at indices inverted.
// An index listed twice is flipped twice.
func FlipBits(codeword string, indices ...int) (string, error) {
	out := []byte(codeword)
	for _, index := range indices {
		if index < 0 || index >= len(out) {
			return "", fmt.Errorf("%w: index %v not in [0,%v)", ErrIndexOutOfRange, index, len(out))
		}
		switch out[index] {
		case '0':
			out[index] = '1'
		case '1':
			out[index] = '0'
		default:
			return "", fmt.Errorf("%w: non-binary character %q at index %v", ErrInvalidInput, out[index], index)
		}
	}
	return string(out), nil
}
