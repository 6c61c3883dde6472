package video

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
)

// ReencodeCompatible re-exports a rendered video with
// maximum-compatibility settings (baseline profile, level 3.0) for players
// that reject the default encode, notably macOS Quick Look.
func ReencodeCompatible(ctx context.Context, inPath, outPath string) error {
	if _, err := os.Stat(inPath); err != nil {
		return fmt.Errorf("input video: %w", err)
	}

	log.Printf("[video] Re-encoding %s for maximum compatibility...", inPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-i", inPath,
		"-c:v", "libx264",
		"-profile:v", "baseline",
		"-level", "3.0",
		"-preset", "slow",
		"-crf", "23",
		"-c:a", "aac",
		"-b:a", "128k",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg re-encode: %w", err)
	}

	log.Printf("[video] ✅ Compatible video saved: %s", outPath)
	return nil
}
