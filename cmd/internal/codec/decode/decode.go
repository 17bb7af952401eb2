package decode

import (
	"fmt"
	"io"

	"github.com/nathanhack/secded/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Syndrome bool
	Message  bool
)

var DecodeRun = func(cmd *cobra.Command, args []string) {
	if err := Decode(cmd.OutOrStdout(), args[0], Syndrome, Message); err != nil {
		fmt.Println(err)
	}
}

// Decode writes the corrected codeword, the status and, when a bit was
// corrected, its index.
func Decode(w io.Writer, codeword string, showSyndrome, showMessage bool) error {
	code, err := hamming.CodeForLength(len(codeword))
	if err != nil {
		return err
	}
	result, err := code.Decode(codeword)
	if err != nil {
		return err
	}
	logrus.Debugf("%v: syndrome=%v parity mismatch=%v", code, result.Syndrome, result.ParityMismatch)

	fmt.Fprintln(w, result.Codeword)
	if index, ok := result.CorrectedIndex(); ok {
		fmt.Fprintf(w, "%v: bit %v\n", result.Status, index)
	} else {
		fmt.Fprintln(w, result.Status)
	}

	if showSyndrome {
		syndrome, err := code.Syndrome(codeword)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "syndrome: %v\n", syndrome)
	}
	if showMessage {
		message, err := code.Extract(result.Codeword)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "message: %v\n", message)
	}
	return nil
}
