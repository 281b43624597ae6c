package stego

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDiffMetrics(t *testing.T) {
	tmpDir := t.TempDir()
	origPath := filepath.Join(tmpDir, "orig.png")
	stegoPath := filepath.Join(tmpDir, "stego.png")
	heatmapPath := filepath.Join(tmpDir, "heatmap.png")

	// Case 1: identical images. MSE 0, PSNR infinite.
	img1 := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	writeTestPNG(t, origPath, img1)
	writeTestPNG(t, stegoPath, img1)

	result, err := Diff(&DiffArgs{
		OriginalPath: &origPath,
		StegoPath:    &stegoPath,
		HeatmapPath:  &heatmapPath,
	})
	if err != nil {
		t.Fatalf("Diff failed for identical images: %v", err)
	}

	if result.MSE != 0 {
		t.Errorf("Expected MSE 0 for identical images, got %f", result.MSE)
	}
	if !math.IsInf(result.PSNR, 1) {
		t.Errorf("Expected PSNR +Inf for identical images, got %f", result.PSNR)
	}
	if result.ModifiedPixels != 0 {
		t.Errorf("Expected no modified pixels, got %d", result.ModifiedPixels)
	}

	// Case 2: one channel of one pixel changed by 10.
	// MSE = 10^2 / (100 pixels * 3 channels) = 0.333...
	img2 := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img2.Set(0, 0, color.NRGBA{R: 10, G: 0, B: 0, A: 255})
	writeTestPNG(t, stegoPath, img2)

	result, err = Diff(&DiffArgs{
		OriginalPath: &origPath,
		StegoPath:    &stegoPath,
		HeatmapPath:  &heatmapPath,
	})
	if err != nil {
		t.Fatalf("Diff failed for modified image: %v", err)
	}

	expectedMSE := 100.0 / 300.0
	if math.Abs(result.MSE-expectedMSE) > 0.0001 {
		t.Errorf("MSE calculation incorrect. Got %f, want %f", result.MSE, expectedMSE)
	}

	expectedPSNR := 10 * math.Log10((255*255)/expectedMSE)
	if math.Abs(result.PSNR-expectedPSNR) > 0.0001 {
		t.Errorf("PSNR calculation incorrect. Got %f, want %f", result.PSNR, expectedPSNR)
	}
	if result.ModifiedPixels != 1 {
		t.Errorf("Expected 1 modified pixel, got %d", result.ModifiedPixels)
	}
	if result.MaxChannelDiff != 10 {
		t.Errorf("Expected max channel diff 10, got %d", result.MaxChannelDiff)
	}

	if _, err := os.Stat(heatmapPath); os.IsNotExist(err) {
		t.Error("Heatmap file was not created")
	}
}

func TestDiffAfterEmbedding(t *testing.T) {
	tmpDir := t.TempDir()
	origPath := filepath.Join(tmpDir, "orig.png")
	stegoPath := filepath.Join(tmpDir, "stego.png")
	empty := ""

	img := newTestImage(30, 30)
	writeTestPNG(t, origPath, img)

	out, err := EmbedMessage(img, "quality check", DefaultDelimiter)
	if err != nil {
		t.Fatalf("EmbedMessage failed: %v", err)
	}
	writeTestPNG(t, stegoPath, out)

	result, err := Diff(&DiffArgs{
		OriginalPath: &origPath,
		StegoPath:    &stegoPath,
		HeatmapPath:  &empty,
	})
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	// LSB embedding moves a channel by at most 1
	if result.MaxChannelDiff > 1 {
		t.Errorf("LSB embedding changed a channel by %d, want at most 1", result.MaxChannelDiff)
	}
	if result.PSNR < 50 {
		t.Errorf("PSNR after LSB embedding suspiciously low: %f dB", result.PSNR)
	}
}

func TestDiffDimensionMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	origPath := filepath.Join(tmpDir, "orig.png")
	stegoPath := filepath.Join(tmpDir, "stego.png")
	empty := ""

	writeTestPNG(t, origPath, newTestImage(10, 10))
	writeTestPNG(t, stegoPath, newTestImage(11, 10))

	if _, err := Diff(&DiffArgs{
		OriginalPath: &origPath,
		StegoPath:    &stegoPath,
		HeatmapPath:  &empty,
	}); err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}
