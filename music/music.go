package music

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"

	"sleep-video-pipeline/config"
)

// Provider supplies the optional background music track: an existing file
// in the run directory wins, then a yt-dlp download of a curated
// royalty-free track, then a generated silent placeholder.
type Provider struct {
	cfg *config.Config
}

// New creates a new Provider
func New(cfg *config.Config) *Provider {
	return &Provider{cfg: cfg}
}

var existingNames = []string{"background_music", "music", "bgm"}
var existingExts = []string{".mp3", ".wav", ".m4a", ".aac"}

// Curated long-form royalty-free/Creative Commons tracks per mood.
var trackURLs = map[string][]string{
	"ambient": {
		"https://www.youtube.com/watch?v=jfKfPfyJRdk",
		"https://www.youtube.com/watch?v=5qap5aO4i9A",
		"https://www.youtube.com/watch?v=DWcJFNfaw9c",
	},
	"nature": {
		"https://www.youtube.com/watch?v=eKFTSSKCzWA",
		"https://www.youtube.com/watch?v=wzjWIxXBs_s",
		"https://www.youtube.com/watch?v=nDq6TstdEi8",
	},
	"meditation": {
		"https://www.youtube.com/watch?v=1ZYbU82GVz4",
		"https://www.youtube.com/watch?v=IP2l7OaArNc",
		"https://www.youtube.com/watch?v=kHnFzEa_5y8",
	},
	"piano": {
		"https://www.youtube.com/watch?v=jgpJVI3tDbY",
		"https://www.youtube.com/watch?v=1SoqcMeRqbY",
		"https://www.youtube.com/watch?v=YQaV2EQIed8",
	},
	"space": {
		"https://www.youtube.com/watch?v=4-7IOZUG4qw",
		"https://www.youtube.com/watch?v=K_YXUWCuKCQ",
		"https://www.youtube.com/watch?v=1EqOZkw7rq8",
	},
}

// Types lists the supported music moods with a short description each.
func Types() map[string]string {
	return map[string]string{
		"ambient":    "Lofi and ambient background music",
		"nature":     "Nature sounds (rain, forest, ocean)",
		"meditation": "Calm meditation and zen music",
		"piano":      "Peaceful piano melodies",
		"space":      "Deep space and cosmic ambient sounds",
		"silence":    "No background music",
	}
}

// Get returns the path to a background music track of roughly the given
// duration, or "" when the mood is silence.
func (p *Provider) Get(ctx context.Context, duration float64, outputDir string) (string, error) {
	if p.cfg.Music.Type == "silence" {
		log.Println("[music] No background music selected")
		return "", nil
	}

	if existing := FindExisting(outputDir); existing != "" {
		log.Printf("[music] Using existing background music: %s", filepath.Base(existing))
		return existing, nil
	}

	if path, err := p.download(ctx, duration, outputDir); err == nil && path != "" {
		return path, nil
	} else if err != nil {
		log.Printf("[music] Download failed: %v — creating silent placeholder", err)
	}

	return p.createSilence(ctx, duration, outputDir)
}

// FindExisting looks for a user-supplied music file in dir under the
// conventional names.
func FindExisting(dir string) string {
	for _, name := range existingNames {
		for _, ext := range existingExts {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// YtDlpAvailable reports whether yt-dlp is on PATH.
func YtDlpAvailable() bool {
	_, err := exec.LookPath("yt-dlp")
	return err == nil
}

func (p *Provider) download(ctx context.Context, duration float64, outputDir string) (string, error) {
	if !YtDlpAvailable() {
		log.Println("[music] yt-dlp not found — install it to enable music downloads")
		return "", nil
	}

	urls, ok := trackURLs[p.cfg.Music.Type]
	if !ok {
		urls = trackURLs["ambient"]
	}
	url := urls[rand.Intn(len(urls))]

	outFile := filepath.Join(outputDir, "background_music.mp3")
	args := []string{
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"--max-downloads", "1",
		"--no-playlist",
		"--output", outFile,
	}
	// Trim long source tracks close to the narration length
	if duration < 600 {
		args = append(args, "--postprocessor-args", fmt.Sprintf("ffmpeg:-t %d", int(duration+60)))
	}
	args = append(args, url)

	log.Printf("[music] Downloading %s track from %s", p.cfg.Music.Type, url)

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}
	if _, err := os.Stat(outFile); err != nil {
		return "", fmt.Errorf("no audio file found after download")
	}

	log.Printf("[music] ✅ Downloaded background music: %s", outFile)
	return outFile, nil
}

// createSilence writes a silent stereo track so downstream mixing always
// has a music input to work with.
func (p *Provider) createSilence(ctx context.Context, duration float64, outputDir string) (string, error) {
	outFile := filepath.Join(outputDir, "background_music.mp3")

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-f", "lavfi",
		"-i", "anullsrc=channel_layout=stereo:sample_rate=44100",
		"-t", fmt.Sprintf("%.1f", duration),
		"-c:a", "libmp3lame",
		"-b:a", "128k",
		outFile,
	)
	if err := cmd.Run(); err != nil {
		log.Println("[music] No background music — video will have voiceover only")
		return "", nil
	}

	log.Printf("[music] Created silent placeholder (%.1fs)", duration)
	return outFile, nil
}
