package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/secded/linearblock/hamming"
	"github.com/nathanhack/threadpool"
)

// Stats holds the running rate of every decode outcome along with the
// fraction of bits still wrong after decoding.
type Stats struct {
	NoError       avgstd.AvgStd // fraction of trials decoded as NoError
	Corrected     avgstd.AvgStd // fraction of trials decoded as SingleBitCorrected
	Detected      avgstd.AvgStd // fraction of trials decoded as DoubleErrorDetected
	Unresolvable  avgstd.AvgStd // fraction of trials decoded as Unresolvable
	Silent        avgstd.AvgStd // fraction of trials reported clean or corrected that differ from the sent codeword
	CodewordError avgstd.AvgStd // probability of a codeword bit error after decoding
	MessageError  avgstd.AvgStd // probability of a message bit error after decoding
}

func (s Stats) String() string {
	return fmt.Sprintf("{NoError:%0.02f, Corrected:%0.02f, Detected:%0.02f, Unresolvable:%0.02f, Silent:%0.02f, Codeword:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f)}",
		s.NoError.Mean, s.Corrected.Mean, s.Detected.Mean, s.Unresolvable.Mean, s.Silent.Mean,
		s.CodewordError.Mean, math.Sqrt(s.CodewordError.SampledVariance()),
		s.MessageError.Mean, math.Sqrt(s.MessageError.SampledVariance()),
	)
}

// Trials is the number of trials the stats were collected over.
func (s Stats) Trials() int {
	return s.NoError.Count
}

type Checkpoints func(updatedStats Stats)

type MessageConstructor func(trial int) (message string)

type Channel func(codeword string) (channelInducedCodeword string)

func Benchmark(ctx context.Context,
	code *hamming.Code,
	trials int, threads int,
	createMessage MessageConstructor,
	channel Channel,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkContinueStats(ctx, code, trials, threads, createMessage, channel, checkpoints, Stats{}, showProgress)
}

// BenchmarkContinueStats runs trials until previousStats covers trials, each trial
// encoding a message, sending it through channel and decoding it.
func BenchmarkContinueStats(ctx context.Context,
	code *hamming.Code,
	trials int, threads int,
	createMessage MessageConstructor,
	channel Channel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.Trials()
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword, err := code.Encode(message)
		if err != nil {
			panic(err)
		}

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(codeword)

		// repair the codeword (if possible)
		result, err := code.Decode(channelInducedCodeword)
		if err != nil {
			panic(err)
		}

		outcome := Outcome(result, codeword)
		codewordErrors := HammingDistance(codeword, result.Codeword)
		decoded, _ := code.Extract(result.Codeword)
		messageErrors := HammingDistance(message, decoded)

		statsMux.Lock()
		previousStats.NoError.Update(indicator(outcome.Status == hamming.NoError))
		previousStats.Corrected.Update(indicator(outcome.Status == hamming.SingleBitCorrected))
		previousStats.Detected.Update(indicator(outcome.Status == hamming.DoubleErrorDetected))
		previousStats.Unresolvable.Update(indicator(outcome.Status == hamming.Unresolvable))
		previousStats.Silent.Update(indicator(outcome.Silent))
		previousStats.CodewordError.Update(float64(codewordErrors) / float64(code.CodewordLength()))
		previousStats.MessageError.Update(float64(messageErrors) / float64(code.MessageLength()))
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.Trials(); i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

// TrialOutcome is the decoder's verdict on one trial and whether that verdict was wrong.
type TrialOutcome struct {
	Status hamming.Status
	Silent bool
}

// Outcome compares a decode result against the codeword that was sent. The decoder
// is silently wrong when it claims a clean or corrected codeword that isn't the original.
func Outcome(result hamming.Result, sent string) TrialOutcome {
	claimed := result.Status == hamming.NoError || result.Status == hamming.SingleBitCorrected
	return TrialOutcome{
		Status: result.Status,
		Silent: claimed && result.Codeword != sent,
	}
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

//HammingDistance calculates number of characters different.
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistance(a, b string) int {
	min := len(a)
	max := len(b)
	if min > max {
		min = len(b)
		max = len(a)
	}

	count := 0
	for i := 0; i < min; i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return max - min + count
}
