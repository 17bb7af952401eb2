package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/linearblock/hamming"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

func Md5Sum(H mat.SparseMat) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

func LoadCode(filepath string) (*hamming.Code, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the ECC_JSON_FILE must exist")
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var code hamming.Code
	err = json.Unmarshal(bs, &code)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	return &code, nil
}

func SaveCode(filepath string, code *hamming.Code) error {
	bs, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("unable to serialize the code: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("unable to write file: %w", err)
	}
	return nil
}

// LoadResults returns nil, nil when filepath doesn't exist yet.
func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

// PrepareResults loads the results in filepath, or creates them, and checks
// they were made by the same simulation type against the same code.
func PrepareResults(filepath, typeInfo string, code *hamming.Code) (*SimulationStats, error) {
	data, err := LoadResults(filepath)
	if err != nil {
		return nil, err
	}

	eccInfo := Md5Sum(code.ParityCheck())
	//if data is nil then we create it
	if data == nil {
		data = &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  eccInfo,
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo {
		return nil, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != eccInfo {
		return nil, fmt.Errorf("results loaded do not match the ECC")
	}
	return data, nil
}

// Rates lists the values of Rate's name argument.
var Rates = []string{"codeword", "message", "noerror", "corrected", "detected", "unresolvable", "silent"}

// Rate picks the named mean out of stats.
func Rate(stats benchmarking.Stats, name string) (float64, error) {
	switch name {
	case "codeword":
		return stats.CodewordError.Mean, nil
	case "message":
		return stats.MessageError.Mean, nil
	case "noerror":
		return stats.NoError.Mean, nil
	case "corrected":
		return stats.Corrected.Mean, nil
	case "detected":
		return stats.Detected.Mean, nil
	case "unresolvable":
		return stats.Unresolvable.Mean, nil
	case "silent":
		return stats.Silent.Mean, nil
	}
	return 0, fmt.Errorf("unknown rate %q, expected one of %v", name, Rates)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RunSimulation runs trials for every x, each with the channel returned by channelFor(x),
// saving data to outputFilename as it goes.
func RunSimulation(ctx context.Context, data *SimulationStats, code *hamming.Code, xs []float64,
	trials, threads int, channelFor func(x float64) benchmarking.Channel, outputFilename string) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	numberOfThread := threads
	if numberOfThread == 0 {
		numberOfThread = runtime.NumCPU()
	}

	createMessage := func(trial int) string {
		return benchmarking.RandomMessage(code.MessageLength())
	}

	trialsPerIter := numberOfThread * 10
	bar := pb.StartNew(trials * len(xs))
trialLoops:
	for t := trialsPerIter; t < trials+trialsPerIter; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, x := range xs {
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[x] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}
			before := data.Stats[x].Trials()
			data.Stats[x] = benchmarking.BenchmarkContinueStats(ctx, code, min(t, trials), numberOfThread, createMessage, channelFor(x), checkpoint, data.Stats[x], false)
			bar.Add(data.Stats[x].Trials() - before)
		}
	}
	bar.Finish()

	for _, x := range xs {
		logrus.Debugf("%v: %v", x, data.Stats[x])
	}
}
