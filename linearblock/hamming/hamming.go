package hamming

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nathanhack/secded/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

var (
	// ErrInvalidInput is returned when a message or codeword is not a valid bit string
	// of the expected length.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndexOutOfRange is returned when a bit index falls outside the codeword.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Code is an extended (SEC-DED) Hamming code for a fixed message width.
type Code struct {
	messageBits int
	parityBits  int
}

// ParityBits returns r, the smallest value such that 2^r >= m+r+1.
func ParityBits(m int) int {
	r := 0
	for 1<<r < m+r+1 {
		r++
	}
	return r
}

// New creates the extended hamming code carrying messageBits bits of data.
func New(messageBits int) (*Code, error) {
	if messageBits < 1 {
		return nil, fmt.Errorf("%w: message width must be >=1 but found %v", ErrInvalidInput, messageBits)
	}
	return &Code{
		messageBits: messageBits,
		parityBits:  ParityBits(messageBits),
	}, nil
}

// CodeForLength recovers the code from a codeword length alone.
func CodeForLength(length int) (*Code, error) {
	n := length - 1
	r := 0
	for 1<<r < n+1 {
		r++
	}
	m := n - r
	if m < 1 || ParityBits(m) != r {
		return nil, fmt.Errorf("%w: %v is not a valid codeword length", ErrInvalidInput, length)
	}
	return &Code{messageBits: m, parityBits: r}, nil
}

func (c *Code) MessageLength() int {
	return c.messageBits
}

// ParitySymbols is the number of hamming parity bits, not counting the overall parity bit.
func (c *Code) ParitySymbols() int {
	return c.parityBits
}

// CodewordLength is m+r+1.
func (c *Code) CodewordLength() int {
	return c.messageBits + c.parityBits + 1
}

func (c *Code) CodeRate() float64 {
	return float64(c.MessageLength()) / float64(c.CodewordLength())
}

func (c *Code) String() string {
	return fmt.Sprintf("SECDED(%v,%v)", c.CodewordLength(), c.MessageLength())
}

// For JSON marshalling
type code struct {
	MessageBits int
	ParityBits  int
}

func (c *Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(code{MessageBits: c.messageBits, ParityBits: c.parityBits})
}

//UnmarshalJSON checks the parity bits agree with the message width
func (c *Code) UnmarshalJSON(bytes []byte) error {
	var cc code
	err := json.Unmarshal(bytes, &cc)
	if err != nil {
		return err
	}

	n, err := New(cc.MessageBits)
	if err != nil {
		return err
	}
	if n.parityBits != cc.ParityBits {
		return fmt.Errorf("%w: %v message bits require %v parity bits but found %v", ErrInvalidInput, cc.MessageBits, n.parityBits, cc.ParityBits)
	}
	*c = *n
	return nil
}

// numbered is the count of hamming numbered positions (m+r).
func (c *Code) numbered() int {
	return c.messageBits + c.parityBits
}

// ParityCheck creates the extended parity check matrix H with columns in codeword
// (string) order. Row i<r checks every position with bit i set, the last row
// is the overall parity and covers every bit.
func (c *Code) ParityCheck() mat.SparseMat {
	n := c.numbered()
	H := mat.CSRMat(c.parityBits+1, n+1)

	//the columns are the bit versions of the position numbers
	// with an extra 1 at the bottom for the overall parity
	for p := 0; p <= n; p++ {
		vec := mat.CSRVec(c.parityBits + 1)
		for j := 0; j < c.parityBits; j++ {
			if p&(1<<j) > 0 {
				vec.Set(j, 1)
			}
		}
		vec.Set(c.parityBits, 1)
		H.SetColumn(IndexOf(p, n), vec)
	}
	return H
}

// Syndrome calculates H*c over GF(2). The first r entries are the syndrome bits
// (least significant first) and the last entry is set when the overall parity fails.
func (c *Code) Syndrome(codeword string) (mat.SparseVector, error) {
	word, err := c.parse(codeword)
	if err != nil {
		return nil, err
	}

	n := c.numbered()
	vec := mat.CSRVec(n + 1)
	for p, b := range word {
		vec.Set(IndexOf(p, n), int(b))
	}

	syndrome := mat.CSRVec(c.parityBits + 1)
	syndrome.MatMul(c.ParityCheck(), vec)
	return syndrome, nil
}

// Generator creates G, the m x (m+r+1) matrix whose i-th row is the codeword
// of the message with only bit i set. Since the code is linear, encoding a
// message is the GF(2) product message*G.
func (c *Code) Generator() mat.SparseMat {
	G := mat.DOKMat(c.messageBits, c.CodewordLength())
	unit := make([]byte, c.messageBits)
	for i := range unit {
		unit[i] = '0'
	}
	for i := 0; i < c.messageBits; i++ {
		unit[i] = '1'
		codeword, err := c.Encode(string(unit))
		if err != nil {
			panic(err)
		}
		unit[i] = '0'

		for j := 0; j < len(codeword); j++ {
			if codeword[j] == '1' {
				G.Set(i, j, 1)
			}
		}
	}
	return G
}

//Validate will test if this code satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (c *Code) Validate() bool {
	return internal.ValidateHGMatrices(c.Generator(), c.ParityCheck())
}
