package video

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"sleep-video-pipeline/config"
)

// Composer renders the final MP4 from the background image and the
// narration track using ffmpeg.
type Composer struct {
	cfg *config.Config
}

// New creates a new Composer
func New(cfg *config.Config) *Composer {
	return &Composer{cfg: cfg}
}

// Run loops the background for the narration duration and writes output.mp4.
// The primary command applies scaling, fades and the optional text overlay;
// if it fails, a minimal no-filter command is tried before giving up.
func (c *Composer) Run(ctx context.Context, backgroundPath, audioPath, outputDir string) (string, error) {
	duration, err := ProbeDuration(audioPath)
	if err != nil {
		return "", fmt.Errorf("probe narration duration: %w", err)
	}
	log.Printf("[video] Narration duration: %.2fs", duration)

	outFile := filepath.Join(outputDir, "output.mp4")

	if err := c.compose(ctx, backgroundPath, audioPath, outFile, duration, true); err != nil {
		log.Printf("[video] Filtered render failed: %v — retrying with basic settings", err)
		if err := c.compose(ctx, backgroundPath, audioPath, outFile, duration, false); err != nil {
			return "", fmt.Errorf("render video: %w", err)
		}
	}

	log.Printf("[video] ✅ Video ready: %s", outFile)
	return outFile, nil
}

func (c *Composer) compose(ctx context.Context, backgroundPath, audioPath, outFile string, duration float64, filtered bool) error {
	args := c.buildComposeArgs(backgroundPath, audioPath, outFile, duration, filtered)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// buildComposeArgs assembles the ffmpeg invocation. Kept separate from the
// exec call so the argument list is testable without running ffmpeg.
func (c *Composer) buildComposeArgs(backgroundPath, audioPath, outFile string, duration float64, filtered bool) []string {
	args := []string{"-y",
		"-loop", "1",
		"-i", backgroundPath,
		"-i", audioPath,
	}

	if filtered {
		args = append(args, "-vf", c.buildFilter(duration))
	}

	args = append(args,
		"-t", fmt.Sprintf("%.3f", duration),
		"-r", fmt.Sprintf("%d", c.cfg.Video.FPS),
		"-c:v", "libx264",
		"-c:a", "aac",
		"-b:a", c.cfg.Video.AudioBitrate,
		"-pix_fmt", "yuv420p",
		"-shortest",
		"-movflags", "+faststart",
		outFile,
	)
	return args
}

// buildFilter scales and pads the still to the target frame, then applies
// the fixed fade-in/fade-out and the optional drawtext overlay.
func (c *Composer) buildFilter(duration float64) string {
	w := c.cfg.Video.Width
	h := c.cfg.Video.Height
	fade := c.cfg.Video.FadeSec

	filter := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2,setsar=1",
		w, h, w, h,
	)
	filter += fmt.Sprintf(",fade=t=in:st=0:d=%.2f", fade)
	if duration > fade*2 {
		filter += fmt.Sprintf(",fade=t=out:st=%.2f:d=%.2f", duration-fade, fade)
	}

	if text := c.cfg.Video.OverlayText; text != "" {
		filter += fmt.Sprintf(
			",drawtext=text='%s':fontcolor=white@0.8:fontsize=64:x=(w-text_w)/2:y=h-th-80:shadowcolor=black:shadowx=2:shadowy=2",
			escapeDrawtext(text),
		)
	}
	return filter
}

// escapeDrawtext makes text safe inside the single-quoted drawtext value.
// Within a quoted filtergraph section every character is literal and there
// is no in-quote escape for the quote itself, so an apostrophe has to close
// the section, emit an escaped quote, and reopen it.
func escapeDrawtext(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
