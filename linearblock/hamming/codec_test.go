package hamming

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"00000000", "0000000000000"},
		{"10110011", "1100011011011"},
		{"11111111", "1111011101110"},
		{"10000000", "0000000001111"},
		{"1011", "11001100"},
		{"0000000000000001", "1000010000000000010010"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := Encode(test.message, len(test.message))
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestEncode_Invalid(t *testing.T) {
	tests := []struct {
		message string
		width   int
	}{
		{"0102", 4},
		{"0", 8},
		{"000000000", 8},
		{"", 0},
		{"1111 111", 8},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := Encode(test.message, test.width)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected %v but found %v", ErrInvalidInput, err)
			}
		})
	}
}

func TestDecode_AllZero(t *testing.T) {
	zeros := strings.Repeat("0", 13)
	result, err := Decode(zeros)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if result.Codeword != zeros || result.Status != NoError {
		t.Fatalf("expected (%v,%v) but found (%v,%v)", zeros, NoError, result.Codeword, result.Status)
	}
	if _, ok := result.CorrectedIndex(); ok {
		t.Fatalf("expected no corrected index but found %v", result.Index)
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, codeword := range []string{"", "0", "000000000", "00000000000x0"} {
		if _, err := Decode(codeword); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected %v but found %v", codeword, ErrInvalidInput, err)
		}
	}

	c, _ := New(8)
	if _, err := c.Decode("11001100"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected %v but found %v", ErrInvalidInput, err)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, width := range []int{4, 8, 16, 32} {
		t.Run(strconv.Itoa(width), func(t *testing.T) {
			c, _ := New(width)
			for trial := 0; trial < 50; trial++ {
				message := randomMessage(r, width)
				codeword, err := c.Encode(message)
				if err != nil {
					t.Fatalf("expected no error found :%v", err)
				}
				result, err := c.Decode(codeword)
				if err != nil {
					t.Fatalf("expected no error found :%v", err)
				}
				if result.Status != NoError || result.Codeword != codeword {
					t.Fatalf("expected (%v,%v) but found (%v,%v)", codeword, NoError, result.Codeword, result.Status)
				}
				extracted, _ := c.Extract(result.Codeword)
				if extracted != message {
					t.Fatalf("expected %v but found %v", message, extracted)
				}
			}
		})
	}
}

func TestDecode_SingleBit(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, width := range []int{4, 8, 16, 32} {
		t.Run(strconv.Itoa(width), func(t *testing.T) {
			c, _ := New(width)
			for trial := 0; trial < 10; trial++ {
				codeword, _ := c.Encode(randomMessage(r, width))
				for i := 0; i < len(codeword); i++ {
					flipped, err := FlipBit(codeword, i)
					if err != nil {
						t.Fatalf("expected no error found :%v", err)
					}
					result, err := c.Decode(flipped)
					if err != nil {
						t.Fatalf("expected no error found :%v", err)
					}
					if result.Status != SingleBitCorrected {
						t.Fatalf("flip %v: expected %v but found %v", i, SingleBitCorrected, result.Status)
					}
					index, ok := result.CorrectedIndex()
					if !ok || index != i {
						t.Fatalf("expected corrected index %v but found %v", i, index)
					}
					if result.Codeword != codeword {
						t.Fatalf("expected %v but found %v", codeword, result.Codeword)
					}

					//applying the reported correction to the flipped word gives a clean word
					fixed, _ := FlipBit(flipped, index)
					again, _ := c.Decode(fixed)
					if again.Status != NoError {
						t.Fatalf("expected %v but found %v", NoError, again.Status)
					}
				}
			}
		})
	}
}

func TestDecode_DoubleBit(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, width := range []int{4, 8, 16, 32} {
		t.Run(strconv.Itoa(width), func(t *testing.T) {
			c, _ := New(width)
			codeword, _ := c.Encode(randomMessage(r, width))
			for i := 0; i < len(codeword); i++ {
				for j := i + 1; j < len(codeword); j++ {
					flipped, err := FlipBits(codeword, i, j)
					if err != nil {
						t.Fatalf("expected no error found :%v", err)
					}
					result, _ := c.Decode(flipped)
					if result.Status != DoubleErrorDetected {
						t.Fatalf("flip %v,%v: expected %v but found %v", i, j, DoubleErrorDetected, result.Status)
					}
					if result.Codeword != flipped {
						t.Fatalf("expected %v unchanged but found %v", flipped, result.Codeword)
					}
				}
			}
		})
	}
}

func TestDecode_Unresolvable(t *testing.T) {
	//three errors naming position 13 of a 12 position code
	result, err := Decode("1110000000000")
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if result.Status != Unresolvable || result.Syndrome != 13 {
		t.Fatalf("expected (%v,13) but found (%v,%v)", Unresolvable, result.Status, result.Syndrome)
	}
	if result.Codeword != "1110000000000" {
		t.Fatalf("expected codeword unchanged but found %v", result.Codeword)
	}
}

func TestFlipBit(t *testing.T) {
	actual, err := FlipBit("0000", 1)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if actual != "0100" {
		t.Fatalf("expected 0100 but found %v", actual)
	}

	codeword := strings.Repeat("0", 13)
	for _, index := range []int{-1, len(codeword)} {
		if _, err := FlipBit(codeword, index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected %v but found %v", ErrIndexOutOfRange, err)
		}
	}
	if _, err := FlipBit("0a0", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected %v but found %v", ErrInvalidInput, err)
	}
}

func TestStatus_Text(t *testing.T) {
	for _, s := range []Status{NoError, SingleBitCorrected, DoubleErrorDetected, Unresolvable} {
		text, _ := s.MarshalText()
		var actual Status
		if err := actual.UnmarshalText(text); err != nil {
			t.Fatalf("expected no error found :%v", err)
		}
		if actual != s {
			t.Fatalf("expected %v but found %v", s, actual)
		}
	}
}

func ExampleDecode() {
	codeword, _ := Encode("10110011", 8)
	corrupted, _ := FlipBit(codeword, 4)
	result, _ := Decode(corrupted)

	fmt.Println(codeword)
	fmt.Println(corrupted)
	fmt.Println(result.Codeword, result.Status, result.Index)
	//Output:
	// 1100011011011
	// 1100111011011
	// 1100011011011 SingleBitCorrected 4
}
