package thumbnail

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Fallback draws a text-on-gradient thumbnail when the image API is
// unavailable. The embedded Go font keeps it independent of system font
// paths, so it works the same on every platform.
func Fallback(outputDir string, counter int, prompt string, width, height int) (string, error) {
	dc := gg.NewContext(width, height)

	// Dark blue gradient, lightening toward the bottom
	for y := 0; y < height; y++ {
		ratio := float64(y) / float64(height)
		r := int(25 + 50*ratio)
		g := int(25 + 50*ratio)
		b := int(112 + 50*ratio)
		dc.SetRGB255(r, g, b)
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	face, err := fontFace(80)
	if err != nil {
		return "", fmt.Errorf("load font: %w", err)
	}
	dc.SetFontFace(face)

	lines := textLines(prompt)
	lineHeight := float64(height) / 6
	y := float64(height) / 4

	for _, line := range lines {
		x := float64(width) / 2

		// Black outline behind white text for readability on any gradient
		dc.SetRGB255(0, 0, 0)
		for dx := -2.0; dx <= 2.0; dx++ {
			for dy := -2.0; dy <= 2.0; dy++ {
				if dx != 0 || dy != 0 {
					dc.DrawStringAnchored(line, x+dx, y+dy, 0.5, 0.5)
				}
			}
		}
		dc.SetRGB255(255, 255, 255)
		dc.DrawStringAnchored(line, x, y, 0.5, 0.5)

		y += lineHeight
	}

	outFile := filepath.Join(outputDir, fmt.Sprintf("thumbnail_%d.png", counter))
	if err := dc.SavePNG(outFile); err != nil {
		return "", fmt.Errorf("save fallback thumbnail: %w", err)
	}

	log.Printf("[thumbnail] Created fallback thumbnail: %s", outFile)
	return outFile, nil
}

// textLines picks the headline for the fallback image from keywords in the
// user's prompt.
func textLines(prompt string) []string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "calm") || strings.Contains(lower, "peaceful"):
		return []string{"Peaceful", "Sleep", "Journey"}
	case strings.Contains(lower, "night") || strings.Contains(lower, "star"):
		return []string{"Starry", "Night", "Sleep"}
	default:
		return []string{"Sleep &", "Relaxation", "Video"}
	}
}

func fontFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
