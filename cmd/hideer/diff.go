package main

import (
	"fmt"

	"github.com/NightmareLynx/HIDeer/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	diffFlags struct {
		Original string
		Stego    string
		Heatmap  string
	}
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare an original image against a stego image",
	Long:  `Calculates MSE and PSNR between an original and a stego image, and optionally writes a heatmap image highlighting modified pixels.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dArgs := &stego.DiffArgs{
			OriginalPath: &diffFlags.Original,
			StegoPath:    &diffFlags.Stego,
			HeatmapPath:  &diffFlags.Heatmap,
		}
		result, err := stego.Diff(dArgs)
		if err != nil {
			log.Fatal().Err(err).Msg("Comparison failed")
		}

		fmt.Printf("Comparison Complete:\n")
		fmt.Printf("--------------------\n")
		fmt.Printf("MSE (Mean Squared Error):       %.4f\n", result.MSE)
		fmt.Printf("PSNR (Peak Signal-to-Noise):    %.2f dB\n", result.PSNR)
		fmt.Printf("Modified pixels:                %d\n", result.ModifiedPixels)
		fmt.Printf("Max per-channel difference:     %d\n", result.MaxChannelDiff)
		if diffFlags.Heatmap != "" {
			fmt.Printf("Heatmap saved to:               %s\n", diffFlags.Heatmap)
		}
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVarP(&diffFlags.Original, "original", "o", "", "Path to original image (required)")
	diffCmd.MarkFlagRequired("original")
	diffCmd.Flags().StringVarP(&diffFlags.Stego, "stego", "s", "", "Path to stego image (required)")
	diffCmd.MarkFlagRequired("stego")
	diffCmd.Flags().StringVarP(&diffFlags.Heatmap, "heatmap", "m", "", "Output path for the difference heatmap image")
}
