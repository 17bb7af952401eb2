package flip

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nathanhack/secded/linearblock/hamming"
	"github.com/spf13/cobra"
)

var (
	FromRight bool
)

var FlipRun = func(cmd *cobra.Command, args []string) {
	indices := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		index, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Println("please enter a valid bit number: ", err)
			return
		}
		indices = append(indices, index)
	}

	if err := Flip(cmd.OutOrStdout(), args[0], indices, FromRight); err != nil {
		fmt.Println(err)
	}
}

// Flip writes codeword with the bits at indices inverted. With fromRight the
// indices count from the last character.
func Flip(w io.Writer, codeword string, indices []int, fromRight bool) error {
	if fromRight {
		mirrored := make([]int, len(indices))
		for i, index := range indices {
			if index < 0 || index >= len(codeword) {
				return fmt.Errorf("please enter a value between 0 and %v: %w", len(codeword)-1, hamming.ErrIndexOutOfRange)
			}
			mirrored[i] = len(codeword) - 1 - index
		}
		indices = mirrored
	}

	flipped, err := hamming.FlipBits(codeword, indices...)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, flipped)
	return nil
}
