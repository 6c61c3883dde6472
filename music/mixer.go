package music

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// MixUnderNarration lowers the music track and mixes it under the
// narration, keeping the narration's length. Returns the path of the mixed
// MP3.
func MixUnderNarration(ctx context.Context, narrationPath, musicPath string, volume float64, outputDir string) (string, error) {
	outFile := filepath.Join(outputDir, "audio_mixed.mp3")

	filter := fmt.Sprintf(
		"[1:a]volume=%.2f[bg];[0:a][bg]amix=inputs=2:duration=first:normalize=0[aout]",
		volume,
	)

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-i", narrationPath,
		"-i", musicPath,
		"-filter_complex", filter,
		"-map", "[aout]",
		"-c:a", "libmp3lame",
		"-q:a", "2",
		outFile,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg audio mix: %w", err)
	}
	return outFile, nil
}
