package internal

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestValidateHGMatrices(t *testing.T) {
	// hamming(7,4) in systematic form
	H := mat.CSRMat(3, 7,
		1, 1, 0, 1, 1, 0, 0,
		1, 0, 1, 1, 0, 1, 0,
		0, 1, 1, 1, 0, 0, 1)
	G := mat.CSRMat(4, 7,
		1, 0, 0, 0, 1, 1, 0,
		0, 1, 0, 0, 1, 0, 1,
		0, 0, 1, 0, 0, 1, 1,
		0, 0, 0, 1, 1, 1, 1)
	bad := mat.CSRMat(1, 7, 1, 0, 0, 0, 0, 0, 0)
	short := mat.CSRMat(1, 6, 0, 0, 0, 0, 0, 0)

	tests := []struct {
		G        mat.SparseMat
		expected bool
	}{
		{G, true},
		{bad, false},
		{short, false},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if actual := ValidateHGMatrices(test.G, H); actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}
