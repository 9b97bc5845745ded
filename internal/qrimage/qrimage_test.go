package qrimage

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		size         int
		expectedSize int
		expectError  bool
	}{
		{
			name:         "Should render with the default size",
			content:      "https://bank.gov.ua/qr/QkNECjAwMgo",
			size:         0,
			expectedSize: DefaultSize,
		},
		{
			name:         "Should render with a custom size",
			content:      "https://bank.gov.ua/qr/QkNECjAwMgo",
			size:         256,
			expectedSize: 256,
		},
		{
			name:        "Should fail on empty content",
			content:     "",
			expectError: true,
		},
		{
			name:        "Should fail on a size that is too small",
			content:     "abc",
			size:        10,
			expectError: true,
		},
		{
			name:        "Should fail when the content does not fit into a qr code",
			content:     strings.Repeat("x", 5000),
			size:        256,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := RenderPNG(tt.content, tt.size)
			if tt.expectError {
				require.Error(t, err)
				require.Nil(t, b)
				return
			}

			require.NoError(t, err)
			img, err := png.Decode(bytes.NewReader(b))
			require.NoError(t, err)
			require.Equal(t, tt.expectedSize, img.Bounds().Dx())
			require.Equal(t, tt.expectedSize, img.Bounds().Dy())
		})
	}
}
