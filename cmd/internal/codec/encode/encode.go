package encode

import (
	"fmt"
	"io"

	"github.com/nathanhack/secded/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Width int
)

var EncodeRun = func(cmd *cobra.Command, args []string) {
	if err := Encode(cmd.OutOrStdout(), args[0], Width); err != nil {
		fmt.Println(err)
	}
}

// Encode writes the codeword for message along with a parity/data legend.
func Encode(w io.Writer, message string, width int) error {
	code, err := hamming.New(width)
	if err != nil {
		return err
	}
	codeword, err := code.Encode(message)
	if err != nil {
		return fmt.Errorf("please enter a %v bit binary message: %w", width, err)
	}
	logrus.Debugf("%v: %v -> %v", code, message, codeword)

	fmt.Fprintln(w, codeword)
	fmt.Fprintln(w, Legend(len(codeword)))
	return nil
}

// Legend marks each codeword character as a parity (P) or data (D) bit.
func Legend(length int) string {
	n := length - 1
	legend := make([]byte, length)
	for i := range legend {
		p := hamming.PositionOf(i, n)
		if p&(p-1) == 0 {
			//position 0 is the overall parity
			legend[i] = 'P'
		} else {
			legend[i] = 'D'
		}
	}
	return string(legend)
}
