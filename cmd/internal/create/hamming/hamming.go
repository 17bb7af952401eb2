package hamming

import (
	"fmt"

	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/nathanhack/secded/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	MessageBits uint
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	code, err := hamming.New(int(MessageBits))
	if err != nil {
		fmt.Println("Unable to create SEC-DED code: ", err)
		return
	}
	logrus.Debugf("created %v with parity check matrix:\n%v", code, code.ParityCheck())

	err = tools.SaveCode(args[0], code)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v: message=%v parity=%v codeword=%v rate=%0.03f\n",
		code, code.MessageLength(), code.ParitySymbols()+1, code.CodewordLength(), code.CodeRate())
}
