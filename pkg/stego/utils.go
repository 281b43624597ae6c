package stego

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return img, nil
}

// copyImage normalizes any decoded image to NRGBA so pixel channels can be
// addressed directly through the Pix slice.
func copyImage(img image.Image) *image.NRGBA {
	outputImage := image.NewNRGBA(img.Bounds())
	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			pixel := img.At(x, y)
			outputImage.Set(x, y, pixel)
		}
	}
	return outputImage
}

func getPixel(img *image.NRGBA, x int, y int) []uint8 {
	index := img.PixOffset(x, y)
	return img.Pix[index : index+4]
}

// saveImage writes the image in a lossless format chosen by the output
// extension: BMP for .bmp, PNG otherwise. A lossy format would recompress
// the pixels and silently destroy the embedded payload.
func saveImage(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return bmp.Encode(file, img)
	}
	return png.Encode(file, img)
}
