package hamming

import "fmt"

// Encode takes in a message of width '0'/'1' characters and returns its codeword.
func Encode(message string, width int) (string, error) {
	c, err := New(width)
	if err != nil {
		return "", err
	}
	return c.Encode(message)
}

// Encode takes in a message and encodes it, returning a codeword of
// m+r+1 characters written from the highest hamming position down to
// position 1 followed by the overall parity bit.
func (c *Code) Encode(message string) (string, error) {
	if len(message) != c.messageBits {
		return "", fmt.Errorf("%w: message length == %v required but found %v", ErrInvalidInput, c.messageBits, len(message))
	}

	n := c.numbered()
	word := make(bits, n+1)

	//data bits fill the non power of two positions in message order,
	// parity positions stay zero until computed
	next := 0
	for p := 1; p <= n; p++ {
		if isParityPosition(p) {
			continue
		}
		b, ok := parseBit(message[next])
		if !ok {
			return "", fmt.Errorf("%w: non-binary character %q at index %v", ErrInvalidInput, message[next], next)
		}
		word[p] = b
		next++
	}

	//the parity slot is still zero so the check over all
	// positions with bit i set excludes the slot itself
	for i := 0; i < c.parityBits; i++ {
		word[1<<i] = word.check(i)
	}

	word[0] = word.overall()
	return word.String(), nil
}

// Extract returns the message bits carried by a codeword. No correction is
// attempted, call Decode first when the codeword may contain errors.
func (c *Code) Extract(codeword string) (string, error) {
	word, err := c.parse(codeword)
	if err != nil {
		return "", err
	}

	message := make([]byte, 0, c.messageBits)
	for p := 1; p < len(word); p++ {
		if isParityPosition(p) {
			continue
		}
		message = append(message, '0'+word[p])
	}
	return string(message), nil
}
