package background

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fogleman/gg"
)

// Fallback draws a dark blue to black vertical gradient sized for the video
// frame and saves it as background.png. It needs no network and no fonts,
// so it cannot fail for the reasons the API call can.
func Fallback(outputDir string, width, height int) (string, error) {
	dc := gg.NewContext(width, height)

	for y := 0; y < height; y++ {
		ratio := float64(y) / float64(height)
		r := int(25 * (1 - ratio))
		g := int(25 * (1 - ratio))
		b := int(112 * (1 - ratio))
		dc.SetRGB255(r, g, b)
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	outFile := filepath.Join(outputDir, "background.png")
	if err := dc.SavePNG(outFile); err != nil {
		return "", fmt.Errorf("save fallback background: %w", err)
	}

	log.Printf("[background] Created fallback gradient: %s", outFile)
	return outFile, nil
}
