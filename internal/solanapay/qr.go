package solanapay

import (
	"fmt"
	"image/color"

	"github.com/skip2/go-qrcode"
)

// DefaultPNGSize is the edge length of rendered images in pixels.
const DefaultPNGSize = 512

// RenderPNG renders content as a PNG QR code on a transparent background.
func RenderPNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultPNGSize
	}
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	code.BackgroundColor = color.Transparent
	code.ForegroundColor = color.Black
	png, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return png, nil
}

// RenderTerminal renders content with block characters for display in a terminal.
func RenderTerminal(content string) (string, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return code.ToSmallString(false), nil
}
