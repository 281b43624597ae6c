package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/NightmareLynx/HIDeer/pkg/stego"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var analyzeFlags struct {
	Delimiter string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-image]",
	Short: "Analyze how much data an image can hold",
	Long:  `Reports the embeddable capacity of an image in bits and characters. The image is only inspected, never modified.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		imagePath := args[0]

		report, err := stego.AnalyzeCapacity(imagePath, analyzeFlags.Delimiter)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to analyze image")
		}

		fmt.Println("Image Capacity Analysis:")
		wtr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(wtr, "  Image:\t%s\n", imagePath)
		fmt.Fprintf(wtr, "  Dimensions:\t%dx%d\n", report.Width, report.Height)
		fmt.Fprintf(wtr, "  Maximum bits:\t%s\n", humanize.Comma(int64(report.Bits)))
		fmt.Fprintf(wtr, "  Maximum characters:\t%s (%s)\n", humanize.Comma(int64(report.Chars)), humanize.Bytes(uint64(report.Chars)))
		fmt.Fprintf(wtr, "  Maximum message length:\t~%s characters\n", humanize.Comma(int64(report.MaxMessageChars)))
		wtr.Flush()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFlags.Delimiter, "delimiter", "d", "", "Override the end-of-message delimiter")
}
