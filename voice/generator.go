package voice

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"

	"sleep-video-pipeline/config"
)

// Generator produces the narration track via the OpenAI TTS API.
type Generator struct {
	cfg    *config.Config
	client *openai.Client
}

// New creates a new Generator. The API key comes from OPENAI_API_KEY.
func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:    cfg,
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
	}
}

// AvailableVoices lists the voices the TTS API currently offers.
func AvailableVoices() []string {
	return []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
}

// NormalizeVoice maps a requested voice onto the published list, falling
// back to nova (the calm voice suited to sleep content) for unknown names.
func NormalizeVoice(voice string) string {
	for _, v := range AvailableVoices() {
		if voice == v {
			return voice
		}
	}
	return "nova"
}

// Run synthesizes the script with the configured voice and writes
// voiceover.mp3 into outputDir. There is no local fallback: without a
// narration track there is no video, so the error ends the session.
func (g *Generator) Run(ctx context.Context, text, outputDir string) (string, error) {
	return g.RunWithVoice(ctx, text, outputDir, g.cfg.Voice.Voice)
}

// RunWithVoice synthesizes the script with an explicit voice.
func (g *Generator) RunWithVoice(ctx context.Context, text, outputDir, voice string) (string, error) {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set — check your .env file")
	}

	normalized := NormalizeVoice(voice)
	if normalized != voice {
		log.Printf("[voice] Voice %q not available, using %q instead", voice, normalized)
	}

	resp, err := g.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(g.cfg.Voice.Model),
		Input:          text,
		Voice:          openai.SpeechVoice(normalized),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return "", fmt.Errorf("synthesize speech: %w", err)
	}
	defer resp.Close()

	outFile := filepath.Join(outputDir, "voiceover.mp3")
	out, err := os.Create(outFile)
	if err != nil {
		return "", fmt.Errorf("create voiceover file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp); err != nil {
		os.Remove(outFile)
		return "", fmt.Errorf("write voiceover file: %w", err)
	}

	log.Printf("[voice] ✅ Voiceover saved: %s", outFile)
	return outFile, nil
}
