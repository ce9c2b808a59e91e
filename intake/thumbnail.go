package intake

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const halfBlock = "▀"

const (
	// maxThumbnailRows caps the rendered height in terminal lines
	maxThumbnailRows = 16
	// maxDecodePixels bounds the image size decoded for a preview
	maxDecodePixels = 16 << 20
)

// ErrImageTooLarge means the image header declares more pixels than a preview decodes
var ErrImageTooLarge = errors.New("image too large to preview")

// RenderThumbnail draws the image as width columns of half-block cells.
// Each cell shows two vertically stacked pixels: the top one as foreground
// and the bottom one as background.
func RenderThumbnail(data []byte, width int) (string, error) {
	if width <= 0 {
		return "", errors.New("thumbnail width must be positive")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", errors.New("image has no pixels")
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxDecodePixels {
		return "", fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrImageTooLarge)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return "", errors.New("image has no pixels")
	}

	height := width * b.Dy() / b.Dx()
	if height > maxThumbnailRows*2 {
		// Tall images shrink horizontally to keep their aspect within the row cap.
		height = maxThumbnailRows * 2
		width = height * b.Dx() / b.Dy()
		if width < 1 {
			width = 1
		}
	}
	if height < 2 {
		height = 2
	}
	if height%2 == 1 {
		height++
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexAt(dst, x, y))).
				Background(lipgloss.Color(hexAt(dst, x, y+1)))
			out.WriteString(style.Render(halfBlock))
		}
	}
	return out.String(), nil
}

func hexAt(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
