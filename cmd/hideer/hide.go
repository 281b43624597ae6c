package main

import (
	"fmt"

	"github.com/NightmareLynx/HIDeer/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	hideFlags struct {
		File      string
		Delimiter string
		Parity    bool
	}
)

var hideCmd = &cobra.Command{
	Use:   "hide [input-image] [message] [output-image]",
	Short: "Hide a message in an image",
	Long:  `Embeds the message into the least significant bits of the input image's color channels and saves the result to the output path. Use a .png or .bmp output; lossy formats would destroy the payload.`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		imagePath, message, outputPath := args[0], args[1], args[2]

		hArgs := &stego.HideArgs{
			ImagePath: &imagePath,
			Message:   &message,
			File:      &hideFlags.File,
			Output:    &outputPath,
			Delimiter: &hideFlags.Delimiter,
			Parity:    &hideFlags.Parity,
			Verbose:   &verbose,
		}

		result, err := stego.Hide(hArgs)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hide message")
		}

		fmt.Printf("✓ Message successfully hidden in %s\n", outputPath)
		fmt.Printf("  Original image: %s\n", imagePath)
		fmt.Printf("  Message length: %d characters\n", result.MessageChars)
		fmt.Printf("  Binary bits used: %d of %d\n", result.PayloadBits, result.CapacityBits)
	},
}

func init() {
	rootCmd.AddCommand(hideCmd)

	hideCmd.Flags().StringVarP(&hideFlags.File, "file", "f", "", "Read the message from a file instead of the argument")
	hideCmd.Flags().StringVarP(&hideFlags.Delimiter, "delimiter", "d", "", "Override the end-of-message delimiter")
	hideCmd.Flags().BoolVarP(&hideFlags.Parity, "parity", "p", false, "Wrap the payload in Reed-Solomon parity armor")
}
