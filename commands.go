package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sleep-video-pipeline/config"
	"sleep-video-pipeline/music"
	"sleep-video-pipeline/video"
	"sleep-video-pipeline/voice"
)

var (
	flagConfig  string
	flagScript  string
	flagVoice   string
	flagOverlay string
)

var rootCmd = &cobra.Command{
	Use:   "sleepvideo",
	Short: "Turn a narration script into a YouTube-ready sleep video",
	Long: `Sleep Video Generator reads your narration script and produces a
YouTube-ready relaxation video: an AI-generated background image, an AI
voiceover, a composed MP4, an optional thumbnail, and a metadata.json.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runPipeline(cfg, runOptions{
			scriptPath:  flagScript,
			voiceName:   flagVoice,
			overlayText: flagOverlay,
			interactive: true,
		}, os.Stdin, os.Stdout)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate a short demo video without any prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		demoScript := "Welcome to this peaceful moment. " +
			"Take a deep breath and let yourself relax. " +
			"Feel the calm wash over you as you drift into tranquility."
		return runPipeline(cfg, runOptions{
			interactive:     false,
			demoScript:      demoScript,
			title:           "Demo Sleep Video",
			description:     "A peaceful demo video for relaxation",
			thumbnailPrompt: "calm sleep video with stars",
		}, os.Stdin, os.Stdout)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that API keys and external tools are in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runDoctor(cfg, os.Stdout)
	},
}

var fixVideoCmd = &cobra.Command{
	Use:   "fix-video <input.mp4> [output.mp4]",
	Short: "Re-encode a video with maximum-compatibility settings",
	Long: `Re-exports a generated video with baseline-profile H.264 for players
that reject the default encode, such as macOS Quick Look.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath := args[0]
		outPath := compatOutputPath(inPath)
		if len(args) == 2 {
			outPath = args[1]
		}
		if err := video.ReencodeCompatible(context.Background(), inPath, outPath); err != nil {
			return err
		}
		fmt.Println("Try playing this version in Quick Look or Finder preview.")
		return nil
	},
}

var checkAudioCmd = &cobra.Command{
	Use:   "check-audio <video.mp4>",
	Short: "Verify that a generated video has an audio track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := video.ProbeAudio(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Video: %s\n", filepath.Base(args[0]))
		if !info.HasAudio {
			fmt.Println("Has audio: NO")
			return fmt.Errorf("video has no audio track — this indicates an issue with video generation")
		}
		fmt.Println("Has audio: YES")
		fmt.Printf("Audio duration: %.2f seconds\n", info.Duration)
		fmt.Printf("Audio sample rate: %d Hz\n", info.SampleRate)
		fmt.Println("The video should play with sound in media players.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.yaml", "path to config file")
	rootCmd.Flags().StringVar(&flagScript, "script", "", "path to the narration script (default from config)")
	rootCmd.Flags().StringVar(&flagVoice, "voice", "", "TTS voice: "+strings.Join(voice.AvailableVoices(), ", "))
	rootCmd.Flags().StringVar(&flagOverlay, "overlay", "", "text overlaid on the video")

	rootCmd.AddCommand(demoCmd, doctorCmd, fixVideoCmd, checkAudioCmd)
}

func loadConfig() (*config.Config, error) {
	// .env for local dev; real env vars win
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// runDoctor reports the state of everything a full run needs.
func runDoctor(cfg *config.Config, out io.Writer) error {
	fmt.Fprintln(out, "Sleep Video Generator — environment check")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	failed := 0
	check := func(name string, ok bool, hint string) {
		status := "OK"
		if !ok {
			status = "MISSING"
			failed++
		}
		fmt.Fprintf(out, "%-28s %s\n", name, status)
		if !ok && hint != "" {
			fmt.Fprintf(out, "  → %s\n", hint)
		}
	}

	check("OPENAI_API_KEY", os.Getenv("OPENAI_API_KEY") != "",
		"set it in .env or the environment")
	check("ffmpeg", commandAvailable("ffmpeg"),
		"install ffmpeg and make sure it is on PATH")
	check("ffprobe", commandAvailable("ffprobe"),
		"ffprobe ships with ffmpeg")
	check("yt-dlp (optional)", music.YtDlpAvailable(),
		"only needed for background music downloads")

	_, scriptErr := os.Stat(cfg.Paths.Script)
	check("script file ("+cfg.Paths.Script+")", scriptErr == nil,
		"create it with your narration text")

	fmt.Fprintln(out, strings.Repeat("=", 40))
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Fprintln(out, "All checks passed. You are ready to generate.")
	return nil
}

func commandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// compatOutputPath derives output_macos.mp4 style names from the input.
func compatOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	return strings.TrimSuffix(inPath, ext) + "_compat" + ext
}
