package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/NightmareLynx/HIDeer/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	extractFlags struct {
		Delimiter string
		Parity    bool
		Output    string
	}
)

var extractCmd = &cobra.Command{
	Use:   "extract [input-image]",
	Short: "Extract a hidden message from an image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		imagePath := args[0]

		eArgs := &stego.ExtractArgs{
			ImagePath: &imagePath,
			Delimiter: &extractFlags.Delimiter,
			Parity:    &extractFlags.Parity,
			Verbose:   &verbose,
		}

		message, err := stego.Extract(eArgs)
		if errors.Is(err, stego.ErrMessageNotFound) {
			fmt.Println("✗ No hidden message found or image may be corrupted")
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to extract message")
		}

		if extractFlags.Output != "" {
			data, err := stego.MessageBytes(message)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to decode message bytes")
			}
			if err := os.WriteFile(extractFlags.Output, data, 0644); err != nil {
				log.Fatal().Err(err).Msg("Failed to write output file")
			}
			return
		}

		fmt.Println("✓ Message extracted successfully:")
		fmt.Printf("  Hidden message: '%s'\n", message)
		fmt.Printf("  Message length: %d characters\n", len([]rune(message)))
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractFlags.Delimiter, "delimiter", "d", "", "Override the end-of-message delimiter")
	extractCmd.Flags().BoolVarP(&extractFlags.Parity, "parity", "p", false, "Unwrap Reed-Solomon parity armor from the payload")
	extractCmd.Flags().StringVarP(&extractFlags.Output, "output", "o", "", "Write the message to a file instead of stdout")
}
