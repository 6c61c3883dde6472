package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"sleep-video-pipeline/background"
	"sleep-video-pipeline/config"
	"sleep-video-pipeline/metadata"
	"sleep-video-pipeline/music"
	"sleep-video-pipeline/script"
	"sleep-video-pipeline/thumbnail"
	"sleep-video-pipeline/types"
	"sleep-video-pipeline/video"
	"sleep-video-pipeline/voice"
)

// runOptions carries the CLI flag values into a pipeline run.
type runOptions struct {
	scriptPath  string
	voiceName   string
	overlayText string
	interactive bool

	// non-interactive (demo) inputs
	demoScript      string
	title           string
	description     string
	thumbnailPrompt string
}

// runPipeline executes one full generation session: script → background →
// voiceover → video → review → metadata input → thumbnail → metadata.json.
func runPipeline(cfg *config.Config, opts runOptions, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)

	if opts.scriptPath != "" {
		cfg.Paths.Script = opts.scriptPath
	}
	if opts.voiceName != "" {
		cfg.Voice.Voice = opts.voiceName
	}
	if opts.overlayText != "" {
		cfg.Video.OverlayText = opts.overlayText
	}

	fmt.Fprintln(out, "Welcome to the Sleep Video Generator.")
	fmt.Fprintln(out, "This tool will turn your script into a YouTube-ready video with AI voiceover and background.")
	fmt.Fprintln(out)

	// Per-run output dir, keyed by a short run ID
	runID := uuid.NewString()[:8]
	runDir := filepath.Join(cfg.Paths.Output, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	log.Printf("🎬 Run ID: %s", runID)
	log.Printf("📁 Output dir: %s", runDir)

	ctx := context.Background()
	state := &types.SessionState{
		RunID:     runID,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// Save state on exit, success or not
	defer func() {
		state.CompletedAt = time.Now().UTC().Format(time.RFC3339)
		saveState(state, runDir)
	}()

	// Step 1: Script input
	var content string
	var err error
	if opts.demoScript != "" {
		content = opts.demoScript
	} else {
		content, err = script.Load(cfg.Paths.Script)
		if err != nil {
			state.Error = fmt.Sprintf("script: %v", err)
			return err
		}
	}
	state.ScriptChars = len(content)
	if opts.demoScript != "" {
		fmt.Fprintf(out, "Using built-in demo script (%d characters).\n\n", len(content))
	} else {
		fmt.Fprintf(out, "Loaded %d characters from %s.\n\n", len(content), filepath.Base(cfg.Paths.Script))
	}

	// Step 2: Background image
	bgPrompt := cfg.Background.DefaultPrompt
	if opts.interactive {
		bgPrompt = p.askLine(
			"Describe the visual theme for your video background (e.g., \"starry night sky with calm waves\"): ",
			cfg.Background.DefaultPrompt,
		)
	}
	fmt.Fprintln(out, "Generating background image...")
	bgPath, err := background.New(cfg).Run(ctx, bgPrompt, runDir)
	if err != nil {
		state.Error = fmt.Sprintf("background: %v", err)
		return err
	}
	state.BackgroundPath = bgPath
	fmt.Fprintf(out, "Background image generated and saved as %s.\n\n", filepath.Base(bgPath))

	// Step 3: Voiceover
	fmt.Fprintln(out, "Generating voiceover...")
	voicePath, err := voice.New(cfg).Run(ctx, content, runDir)
	if err != nil {
		state.Error = fmt.Sprintf("voice: %v", err)
		return err
	}
	state.VoiceoverPath = voicePath
	fmt.Fprintf(out, "Voiceover generated and saved as %s.\n\n", filepath.Base(voicePath))

	// Optional: mix background music under the narration
	audioPath := voicePath
	if cfg.Music.Enabled {
		audioPath, err = addBackgroundMusic(ctx, cfg, voicePath, runDir)
		if err != nil {
			log.Printf("⚠️  Music step failed: %v — using narration only", err)
			audioPath = voicePath
		}
	}

	// Step 4: Video
	fmt.Fprintln(out, "Creating video...")
	videoPath, err := video.New(cfg).Run(ctx, bgPath, audioPath, runDir)
	if err != nil {
		state.Error = fmt.Sprintf("video: %v", err)
		return err
	}
	state.VideoPath = videoPath
	fmt.Fprintf(out, "Video exported successfully to %s.\n\n", filepath.Base(videoPath))

	// Step 5: Review
	if opts.interactive && p.askYesNo("Would you like to view the video now?") {
		if err := openFile(videoPath); err != nil {
			fmt.Fprintf(out, "Could not open video file. Please manually open: %s\n", videoPath)
		} else {
			fmt.Fprintf(out, "Opening %s with default media player...\n", filepath.Base(videoPath))
		}
	}
	fmt.Fprintln(out)

	// Step 6: YouTube metadata input
	title := opts.title
	description := opts.description
	if opts.interactive {
		title = p.askLine("Enter a YouTube title for your video: ", "")
		description = p.askDescription("Enter a YouTube description (press Enter twice to finish):")
		fmt.Fprintln(out)
	}

	// Step 7: Thumbnail (optional, with the manual review loop)
	thumbPath := ""
	switch {
	case opts.interactive:
		if p.askYesNo("Would you like to generate a YouTube thumbnail?") {
			thumbPath, err = thumbnailWorkflow(ctx, cfg, p, out, runDir)
			if err != nil {
				state.Error = fmt.Sprintf("thumbnail: %v", err)
				return err
			}
		}
	case opts.thumbnailPrompt != "":
		fmt.Fprintln(out, "Generating thumbnail...")
		thumbPath, err = thumbnail.New(cfg).Run(ctx, opts.thumbnailPrompt, runDir, 1)
		if err != nil {
			state.Error = fmt.Sprintf("thumbnail: %v", err)
			return err
		}
		fmt.Fprintf(out, "Thumbnail saved as %s.\n", filepath.Base(thumbPath))
	}
	state.ThumbnailPath = thumbPath
	fmt.Fprintln(out)

	// Step 8: Metadata file
	metaPath, err := metadata.Save(runDir, title, description, videoPath, voicePath, bgPath, thumbPath)
	if err != nil {
		state.Error = fmt.Sprintf("metadata: %v", err)
		return err
	}
	state.MetadataPath = metaPath

	// Step 9: Summary
	fmt.Fprintln(out, "Video generation complete.")
	fmt.Fprintf(out, "Video: %s\n", filepath.Base(videoPath))
	fmt.Fprintf(out, "Voiceover: %s\n", filepath.Base(voicePath))
	fmt.Fprintf(out, "Background: %s\n", filepath.Base(bgPath))
	if thumbPath != "" {
		fmt.Fprintf(out, "Thumbnail: %s\n", filepath.Base(thumbPath))
	}
	fmt.Fprintln(out, "Title and description saved to metadata.json.")
	fmt.Fprintln(out, "Ready for YouTube upload.")
	return nil
}

// thumbnailWorkflow runs the accept/regenerate/edit-prompt loop. The counter
// advances on every new attempt so earlier candidates stay on disk.
func thumbnailWorkflow(ctx context.Context, cfg *config.Config, p *prompter, out io.Writer, runDir string) (string, error) {
	prompt := p.askLine(
		"Describe your desired thumbnail (e.g., \"calm night sky with soft glowing stars and relaxing text\"): ",
		cfg.Thumbnail.DefaultPrompt,
	)

	gen := thumbnail.New(cfg)
	counter := 1
	for {
		fmt.Fprintln(out, "Generating thumbnail...")
		path, err := gen.Run(ctx, prompt, runDir, counter)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(out, "Thumbnail saved as %s.\n", filepath.Base(path))

		switch p.askThumbnailChoice() {
		case choiceAccept:
			return path, nil
		case choiceRegenerate:
			counter++
		case choiceEditPrompt:
			prompt = p.askLine("Enter new thumbnail description: ", cfg.Thumbnail.DefaultPrompt)
			counter++
		}
	}
}

// addBackgroundMusic fetches a music track for the narration's length and
// mixes it underneath at the configured volume.
func addBackgroundMusic(ctx context.Context, cfg *config.Config, voicePath, runDir string) (string, error) {
	duration, err := video.ProbeDuration(voicePath)
	if err != nil {
		return "", fmt.Errorf("probe narration: %w", err)
	}

	musicPath, err := music.New(cfg).Get(ctx, duration, runDir)
	if err != nil {
		return "", err
	}
	if musicPath == "" {
		return voicePath, nil
	}
	return music.MixUnderNarration(ctx, voicePath, musicPath, cfg.Music.Volume, runDir)
}

func saveState(state *types.SessionState, dir string) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.Printf("Warning: could not marshal session state: %v", err)
		return
	}
	path := filepath.Join(dir, "session_state.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("Warning: could not save %s: %v", path, err)
	}
}
