package flip

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/nathanhack/secded/linearblock/hamming"
)

func TestFlip(t *testing.T) {
	tests := []struct {
		codeword  string
		indices   []int
		fromRight bool
		expected  string
	}{
		{"1100011011011", []int{4}, false, "1100111011011\n"},
		{"1100011011011", []int{0}, true, "1100011011010\n"},
		{"1100011011011", []int{0, 12}, false, "0100011011010\n"},
		{"1100011011011", []int{3, 3}, false, "1100011011011\n"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			buf := bytes.Buffer{}
			if err := Flip(&buf, test.codeword, test.indices, test.fromRight); err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if buf.String() != test.expected {
				t.Fatalf("expected %q but found %q", test.expected, buf.String())
			}
		})
	}
}

func TestFlip_OutOfRange(t *testing.T) {
	for _, fromRight := range []bool{false, true} {
		for _, index := range []int{-1, 13} {
			buf := bytes.Buffer{}
			err := Flip(&buf, "1100011011011", []int{index}, fromRight)
			if !errors.Is(err, hamming.ErrIndexOutOfRange) {
				t.Fatalf("expected %v but found %v", hamming.ErrIndexOutOfRange, err)
			}
		}
	}
}
