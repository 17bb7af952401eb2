package benchmarking

import (
	"math"
	"math/rand"
	"strings"

	"github.com/nathanhack/secded/linearblock/hamming"
	mat2 "gonum.org/v1/gonum/mat"
)

// RandomMessage creates a random message of length len.
func RandomMessage(len int) string {
	sb := strings.Builder{}
	sb.Grow(len)
	for i := 0; i < len; i++ {
		sb.WriteByte('0' + byte(rand.Intn(2)))
	}
	return sb.String()
}

// RandomMessageOnesCount creates a random message of length len with a hamming weight equal to onesCount
func RandomMessageOnesCount(len int, onesCount int) string {
	if onesCount > len {
		onesCount = len
	}
	message := []byte(strings.Repeat("0", len))
	for _, i := range rand.Perm(len)[:onesCount] {
		message[i] = '1'
	}
	return string(message)
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip,len(input)) distinct bits.
func RandomFlipBitCount(input string, numberOfBitsToFlip int) string {
	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < len(input) {
		flip[rand.Intn(len(input))] = true
	}

	indices := make([]int, 0, len(flip))
	for i := range flip {
		indices = append(indices, i)
	}
	output, err := hamming.FlipBits(input, indices...)
	if err != nil {
		panic(err)
	}
	return output
}

// RandomFlipProbability flips each bit independently with probability crossoverProbability.
func RandomFlipProbability(input string, crossoverProbability float64) string {
	indices := make([]int, 0)
	for i := 0; i < len(input); i++ {
		if rand.Float64() < crossoverProbability {
			indices = append(indices, i)
		}
	}
	output, err := hamming.FlipBits(input, indices...)
	if err != nil {
		panic(err)
	}
	return output
}

//BitsToBPSK converts a '0'/'1' codeword to a [-1,1] vector
func BitsToBPSK(codeword string) mat2.Vector {
	output := mat2.NewVecDense(len(codeword), nil)

	for i := 0; i < len(codeword); i++ {
		if codeword[i] == '1' {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits converts a BPSK vector [-1,1] to a '0'/'1' codeword.
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) string {
	result := make([]byte, a.Len())

	for i := 0; i < a.Len(); i++ {
		result[i] = '0'
		if a.AtVec(i) >= boundary {
			result[i] = '1'
		}
	}
	return string(result)
}

// RandomNoiseBPSK creates a randomizes version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}

// FlipChannel flips exactly count distinct bits of every codeword.
func FlipChannel(count int) Channel {
	return func(codeword string) string {
		return RandomFlipBitCount(codeword, count)
	}
}

// BSCChannel is a binary symmetric channel with the given crossover probability.
func BSCChannel(crossoverProbability float64) Channel {
	return func(codeword string) string {
		return RandomFlipProbability(codeword, crossoverProbability)
	}
}

// BPSKChannel modulates the codeword, adds white gaussian noise for E_b/N_0 and
// makes a hard decision at zero.
func BPSKChannel(E_bPerN_0 float64) Channel {
	return func(codeword string) string {
		return BPSKToBits(RandomNoiseBPSK(BitsToBPSK(codeword), E_bPerN_0), 0)
	}
}
