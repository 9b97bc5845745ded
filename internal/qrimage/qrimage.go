package qrimage

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 1000
	MinSize     = 64
	MaxSize     = 4096
)

var ErrEmptyContent = errors.New("qr content is empty")

// RenderPNG renders content as a PNG QR code of size x size pixels.
//
// High recovery leaves room for a logo in the middle of the code. A size of 0
// selects DefaultSize.
func RenderPNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("qr image size must be between %d and %d, got %d", MinSize, MaxSize, size)
	}

	png, err := qrcode.Encode(content, qrcode.High, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return png, nil
}
