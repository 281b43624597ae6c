package stego

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

type DiffArgs struct {
	OriginalPath *string
	StegoPath    *string
	HeatmapPath  *string
}

// DiffResult holds metrics about the comparison between two images.
type DiffResult struct {
	MSE            float64 // Mean Squared Error
	PSNR           float64 // Peak Signal-to-Noise Ratio (dB)
	ModifiedPixels int
	MaxChannelDiff int
}

// Diff compares an original image with a stego image and optionally writes
// a difference heatmap. Only the three color channels are compared; alpha
// carries no payload.
func Diff(args *DiffArgs) (*DiffResult, error) {
	img1Raw, err := loadImage(*args.OriginalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load original: %w", err)
	}
	img2Raw, err := loadImage(*args.StegoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load stego image: %w", err)
	}

	img1 := copyImage(img1Raw)
	img2 := copyImage(img2Raw)

	bounds := img1.Bounds()
	if bounds != img2.Bounds() {
		return nil, fmt.Errorf("image dimensions do not match: %v vs %v", bounds, img2.Bounds())
	}

	width, height := bounds.Max.X, bounds.Max.Y
	var sumSquaredError float64
	modified := 0
	maxDiff := 0
	heatmap := image.NewNRGBA(bounds)

	bar := progressbar.NewOptions(
		width*height,
		progressbar.OptionSetDescription("comparing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65*time.Millisecond),
	)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			bar.Add(1)
			p1 := img1.PixOffset(x, y)
			p2 := img2.PixOffset(x, y)

			var diffSum float64
			isModified := false

			for i := 0; i < channelsPerPixel; i++ {
				v1 := float64(img1.Pix[p1+i])
				v2 := float64(img2.Pix[p2+i])
				diff := v1 - v2
				sumSquaredError += diff * diff
				diffSum += math.Abs(diff)

				if d := int(math.Abs(diff)); d > maxDiff {
					maxDiff = d
				}
				if img1.Pix[p1+i] != img2.Pix[p2+i] {
					isModified = true
				}
			}

			if isModified {
				modified++
				// A difference of 1 becomes 50 brightness so LSB flips are visible.
				intensity := uint8(math.Min(255, diffSum*50))
				heatmap.Set(x, y, color.NRGBA{R: intensity, G: 255 - intensity, B: 0, A: 255})
			} else {
				heatmap.Set(x, y, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
			}
		}
	}

	totalPixels := float64(width * height)
	mse := sumSquaredError / (totalPixels * channelsPerPixel)
	psnr := 10 * math.Log10((255*255)/mse)

	if args.HeatmapPath != nil && *args.HeatmapPath != "" {
		if err := saveImage(heatmap, *args.HeatmapPath); err != nil {
			return nil, fmt.Errorf("failed to save heatmap: %w", err)
		}
	}

	return &DiffResult{MSE: mse, PSNR: psnr, ModifiedPixels: modified, MaxChannelDiff: maxDiff}, nil
}
