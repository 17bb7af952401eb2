package hamming

import (
	"fmt"
	"strings"
)

// Status is the classification of a decoded codeword.
type Status int

const (
	NoError Status = iota
	SingleBitCorrected
	DoubleErrorDetected
	Unresolvable
)

var statusNames = []string{
	NoError:             "NoError",
	SingleBitCorrected:  "SingleBitCorrected",
	DoubleErrorDetected: "DoubleErrorDetected",
	Unresolvable:        "Unresolvable",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if strings.EqualFold(name, string(text)) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(text))
}

// Result is the outcome of Decode.
type Result struct {
	Codeword       string // corrected codeword, or the input when nothing was corrected
	Status         Status
	Syndrome       int  // hamming position named by the failed checks, 0 if none failed
	ParityMismatch bool // overall parity bit disagrees with the numbered positions
	Index          int  // string index of the corrected bit, -1 if nothing was corrected
}

// CorrectedIndex returns the string index of the corrected bit.
func (r Result) CorrectedIndex() (int, bool) {
	return r.Index, r.Index >= 0
}

// Decode detects and corrects errors in a codeword. The code is recovered
// from the codeword length.
func Decode(codeword string) (Result, error) {
	c, err := CodeForLength(len(codeword))
	if err != nil {
		return Result{}, err
	}
	return c.Decode(codeword)
}

// Decode computes the syndrome and overall parity of codeword and classifies it:
//
//	syndrome  overall parity  status
//	0         match           NoError
//	s<=n      mismatch        SingleBitCorrected, position s is flipped
//	0         mismatch        SingleBitCorrected, the overall parity bit is flipped
//	s         match           DoubleErrorDetected
//	s>n       mismatch        Unresolvable
func (c *Code) Decode(codeword string) (Result, error) {
	word, err := c.parse(codeword)
	if err != nil {
		return Result{}, err
	}

	//here the parity position is included so a clean codeword gives zero
	syndrome := 0
	for i := 0; i < c.parityBits; i++ {
		if word.check(i) != 0 {
			syndrome |= 1 << i
		}
	}
	mismatch := word.overall() != word[0]

	n := c.numbered()
	result := Result{
		Codeword:       codeword,
		Syndrome:       syndrome,
		ParityMismatch: mismatch,
		Index:          -1,
	}

	switch {
	case syndrome == 0 && !mismatch:
		result.Status = NoError
	case !mismatch:
		result.Status = DoubleErrorDetected
	case syndrome > n:
		//names a position a shortened code doesn't have
		result.Status = Unresolvable
	default:
		//a zero syndrome with a mismatch means position 0, the overall parity bit
		word[syndrome] ^= 1
		result.Status = SingleBitCorrected
		result.Codeword = word.String()
		result.Index = IndexOf(syndrome, n)
	}
	return result, nil
}
