package benchmarking

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/nathanhack/secded/linearblock/hamming"
)

func ExampleBenchmark() {
	code, _ := hamming.New(8)

	createMessage := func(trial int) string {
		return RandomMessage(code.MessageLength())
	}

	//since hamming can fix only one bit wrong we'll just flip one bit per codeword
	channel := FlipChannel(1)

	checkpoint := func(updatedStats Stats) {}

	stats := Benchmark(context.Background(), code, 1000, 1, createMessage, channel, checkpoint, false)

	fmt.Println("Corrected :", stats.Corrected.Mean)
	fmt.Println("Codeword Errors :", stats.CodewordError.Mean)
	//Output:
	// Corrected : 1
	// Codeword Errors : 0
}

func TestBenchmark_Flips(t *testing.T) {
	code, _ := hamming.New(16)
	tests := []struct {
		flips                                int
		noError, corrected, detected, silent float64
	}{
		{0, 1, 0, 0, 0},
		{1, 0, 1, 0, 0},
		{2, 0, 0, 1, 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			createMessage := func(trial int) string {
				return RandomMessage(code.MessageLength())
			}
			stats := Benchmark(context.Background(), code, 200, 2, createMessage, FlipChannel(test.flips), nil, false)

			if stats.Trials() != 200 {
				t.Fatalf("expected %v but found %v", 200, stats.Trials())
			}
			if stats.NoError.Mean != test.noError {
				t.Fatalf("expected %v but found %v", test.noError, stats.NoError.Mean)
			}
			if stats.Corrected.Mean != test.corrected {
				t.Fatalf("expected %v but found %v", test.corrected, stats.Corrected.Mean)
			}
			if stats.Detected.Mean != test.detected {
				t.Fatalf("expected %v but found %v", test.detected, stats.Detected.Mean)
			}
			if stats.Silent.Mean != test.silent {
				t.Fatalf("expected %v but found %v", test.silent, stats.Silent.Mean)
			}
		})
	}
}

func TestBenchmarkContinueStats(t *testing.T) {
	code, _ := hamming.New(8)
	createMessage := func(trial int) string {
		return RandomMessageOnesCount(code.MessageLength(), trial%code.MessageLength())
	}

	stats := Benchmark(context.Background(), code, 50, 1, createMessage, FlipChannel(1), nil, false)
	stats = BenchmarkContinueStats(context.Background(), code, 120, 1, createMessage, FlipChannel(1), nil, stats, false)
	if stats.Trials() != 120 {
		t.Fatalf("expected %v but found %v", 120, stats.Trials())
	}

	//nothing left to run
	again := BenchmarkContinueStats(context.Background(), code, 100, 1, createMessage, FlipChannel(1), nil, stats, false)
	if again.Trials() != 120 {
		t.Fatalf("expected %v but found %v", 120, again.Trials())
	}
}

func TestOutcome(t *testing.T) {
	sent := "0000000000000"
	tests := []struct {
		result   hamming.Result
		expected TrialOutcome
	}{
		{hamming.Result{Codeword: sent, Status: hamming.NoError}, TrialOutcome{hamming.NoError, false}},
		{hamming.Result{Codeword: "0000000000111", Status: hamming.NoError}, TrialOutcome{hamming.NoError, true}},
		{hamming.Result{Codeword: "0000000000011", Status: hamming.SingleBitCorrected}, TrialOutcome{hamming.SingleBitCorrected, true}},
		{hamming.Result{Codeword: "0000000000011", Status: hamming.DoubleErrorDetected}, TrialOutcome{hamming.DoubleErrorDetected, false}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Outcome(test.result, sent)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestBPSK(t *testing.T) {
	codeword := "1100011011011"
	actual := BPSKToBits(BitsToBPSK(codeword), 0)
	if actual != codeword {
		t.Fatalf("expected %v but found %v", codeword, actual)
	}
}

func TestRandomFlipBitCount(t *testing.T) {
	input := "0000000000000"
	for count := 0; count <= len(input)+2; count++ {
		actual := RandomFlipBitCount(input, count)
		expected := count
		if expected > len(input) {
			expected = len(input)
		}
		if HammingDistance(input, actual) != expected {
			t.Fatalf("expected %v but found %v", expected, HammingDistance(input, actual))
		}
	}
}
