package stego

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

type HideArgs struct {
	ImagePath *string
	Message   *string
	File      *string
	Output    *string
	Delimiter *string
	Parity    *bool
	Verbose   *bool
}

type ExtractArgs struct {
	ImagePath *string
	Delimiter *string
	Parity    *bool
	Verbose   *bool
}

// HideResult reports what a successful hide actually wrote.
type HideResult struct {
	MessageChars int // length of the original message, before any parity armor
	PayloadBits  int // bits written to the image, delimiter and armor included
	CapacityBits int
}

// Hide embeds a message into the image at ImagePath and writes the result
// to Output. The carrier file is never modified.
func Hide(args *HideArgs) (*HideResult, error) {
	img, err := loadImage(*args.ImagePath)
	if err != nil {
		return nil, err
	}

	message := *args.Message
	if args.File != nil && *args.File != "" {
		data, err := os.ReadFile(*args.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		message = bytesToText(data)
	}

	messageChars := len([]rune(message))

	delimiter := DefaultDelimiter
	if args.Delimiter != nil && *args.Delimiter != "" {
		delimiter = *args.Delimiter
	}

	if args.Parity != nil && *args.Parity {
		raw, err := textToBytes(message)
		if err != nil {
			return nil, err
		}
		message, err = armorMessage(raw)
		if err != nil {
			return nil, err
		}
	}

	if strings.Contains(message, delimiter) {
		return nil, fmt.Errorf("%w: %q", ErrDelimiterInMessage, delimiter)
	}

	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	if args.Verbose != nil && *args.Verbose {
		log.Debug().Int("width", width).Int("height", height).Msg("Image dimensions")
		log.Debug().Int("bits", CapacityBits(width, height)).Msg("Total bits available")
	}

	outputImage, err := EmbedMessage(img, message, delimiter)
	if err != nil {
		return nil, err
	}

	if err := saveImage(outputImage, *args.Output); err != nil {
		return nil, err
	}

	if args.Verbose != nil && *args.Verbose {
		log.Info().Str("output", *args.Output).Msg("Embedded message into the image")
	}

	return &HideResult{
		MessageChars: messageChars,
		PayloadBits:  (len([]rune(message)) + len(delimiter)) * 8,
		CapacityBits: CapacityBits(width, height),
	}, nil
}

// EmbedMessage appends the delimiter to the message, validates capacity
// and writes the payload bits into the least significant bits of a fresh
// NRGBA copy of img. The source image is left untouched; pixels past the
// payload span are copied through byte-identical.
func EmbedMessage(img image.Image, message, delimiter string) (*image.NRGBA, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	bits, err := encodeText(message + delimiter)
	if err != nil {
		return nil, err
	}

	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	if err := validateCapacity(len(bits), width, height); err != nil {
		return nil, err
	}

	outputImage := copyImage(img)

	bar := progressbar.NewOptions64(
		int64(len(bits)),
		progressbar.OptionSetDescription("embedding"),
		progressbar.OptionSetWriter(os.Stderr),
	)

	walker := newChannelWalker(width, height)
	for _, bit := range bits {
		pixel := getPixel(outputImage, walker.x, walker.y)
		if bit == 0 {
			pixel[walker.channel] = clearBitUint8(pixel[walker.channel], 0)
		} else {
			pixel[walker.channel] = setBitUint8(pixel[walker.channel], 0)
		}
		bar.Add(1)
		walker.step()
	}

	return outputImage, nil
}

// Extract recovers the hidden message from the image at ImagePath.
// Returns ErrMessageNotFound when the delimiter never shows up.
func Extract(args *ExtractArgs) (string, error) {
	img, err := loadImage(*args.ImagePath)
	if err != nil {
		return "", err
	}

	delimiter := DefaultDelimiter
	if args.Delimiter != nil && *args.Delimiter != "" {
		delimiter = *args.Delimiter
	}

	message, err := ExtractMessage(img, delimiter)
	if err != nil {
		return "", err
	}

	if args.Parity != nil && *args.Parity {
		raw, err := unarmorMessage(message)
		if err != nil {
			return "", err
		}
		message = bytesToText(raw)
	}

	if args.Verbose != nil && *args.Verbose {
		log.Debug().Int("chars", len([]rune(message))).Msg("Recovered message")
	}

	return message, nil
}

// ExtractMessage scans the entire image in canonical order, decodes the
// collected bits and truncates at the first occurrence of the delimiter.
// The full grid is always scanned; the decoder has no length header to
// stop on.
func ExtractMessage(img image.Image, delimiter string) (string, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	grid := copyImage(img)
	width := grid.Bounds().Max.X
	height := grid.Bounds().Max.Y

	bar := progressbar.NewOptions64(
		int64(CapacityBits(width, height)),
		progressbar.OptionSetDescription("extracting"),
		progressbar.OptionSetWriter(os.Stderr),
	)

	bits := make([]uint8, 0, CapacityBits(width, height))
	for walker := newChannelWalker(width, height); !walker.done(); walker.step() {
		pixel := getPixel(grid, walker.x, walker.y)
		bits = append(bits, uint8(getBitUint8(pixel[walker.channel], 0)))
		bar.Add(1)
	}

	decoded := decodeBits(bits)
	index := strings.Index(decoded, delimiter)
	if index < 0 {
		return "", ErrMessageNotFound
	}

	return decoded[:index], nil
}

// CapacityReport describes how much data an image can hold.
type CapacityReport struct {
	Width           int
	Height          int
	Bits            int
	Chars           int
	MaxMessageChars int
}

// AnalyzeCapacity reports the embeddable capacity of the image at path.
// Only the image header is decoded; the pixel data is never read or
// mutated.
func AnalyzeCapacity(path, delimiter string) (*CapacityReport, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return &CapacityReport{
		Width:           config.Width,
		Height:          config.Height,
		Bits:            CapacityBits(config.Width, config.Height),
		Chars:           CapacityChars(config.Width, config.Height),
		MaxMessageChars: MaxMessageChars(config.Width, config.Height, delimiter),
	}, nil
}
