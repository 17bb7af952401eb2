package cmd

import (
	"github.com/nathanhack/secded/cmd/internal/codec/decode"
	"github.com/nathanhack/secded/cmd/internal/codec/encode"
	"github.com/nathanhack/secded/cmd/internal/codec/flip"
	"github.com/nathanhack/secded/cmd/internal/codec/interactive"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode MESSAGE",
	Aliases: []string{"e", "enc"},
	Short:   "Encodes a binary message into a codeword",
	Long:    `Encodes a binary message into an extended hamming codeword. The codeword lists the highest hamming position first and the overall parity bit last.`,
	Args:    cobra.ExactArgs(1),
	Run:     encode.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode CODEWORD",
	Aliases: []string{"d", "dec", "correct"},
	Short:   "Detects and corrects errors in a codeword",
	Long:    `Detects and corrects errors in a codeword. Single bit errors are corrected, double bit errors are detected.`,
	Args:    cobra.ExactArgs(1),
	Run:     decode.DecodeRun,
}

// flipCmd represents the flip command
var flipCmd = &cobra.Command{
	Use:     "flip CODEWORD INDEX [INDEX] ...",
	Aliases: []string{"f"},
	Short:   "Flips bits of a codeword",
	Long:    `Flips the bits at the given indices of a codeword to inject errors.`,
	Args:    cobra.MinimumNArgs(2),
	Run:     flip.FlipRun,
}

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s", "repl"},
	Short:   "Interactive encode, flip and correct session",
	Long:    `Starts an interactive session holding the current codeword. Type help for the commands.`,
	Args:    cobra.NoArgs,
	Run:     interactive.SessionRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().IntVarP(&encode.Width, "width", "w", 8, "the number of bits in the message")

	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVarP(&decode.Syndrome, "syndrome", "s", false, "print the parity check syndrome vector")
	decodeCmd.Flags().BoolVarP(&decode.Message, "message", "m", false, "print the message carried by the corrected codeword")

	rootCmd.AddCommand(flipCmd)
	flipCmd.Flags().BoolVarP(&flip.FromRight, "right", "r", false, "count indices from the right, 0 being the overall parity bit")

	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().IntVarP(&interactive.Width, "width", "w", 8, "the number of bits in the message")
}
