package background

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sashabaranov/go-openai"

	"sleep-video-pipeline/config"
)

// Generator creates the full-frame background image via the OpenAI image
// API, with a locally drawn gradient as the fallback when the API fails.
type Generator struct {
	cfg        *config.Config
	client     *openai.Client
	httpClient *http.Client
}

// New creates a new Generator. The API key comes from OPENAI_API_KEY.
func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:        cfg,
		client:     openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Run generates the background for the user's visual theme and saves it as
// background.png in outputDir. Any API or download failure falls back to a
// locally drawn gradient so the session can continue offline.
func (g *Generator) Run(ctx context.Context, prompt, outputDir string) (string, error) {
	path, err := g.generate(ctx, prompt, outputDir)
	if err != nil {
		log.Printf("[background] Generation failed: %v — drawing fallback gradient", err)
		return Fallback(outputDir, g.cfg.Video.Width, g.cfg.Video.Height)
	}
	return path, nil
}

func (g *Generator) generate(ctx context.Context, prompt, outputDir string) (string, error) {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set — check your .env file")
	}

	fullPrompt := fmt.Sprintf(
		"A beautiful, calming %s, perfect for a sleep/meditation video background, 16:9 aspect ratio, high quality, peaceful atmosphere",
		prompt,
	)

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          openai.CreateImageModelDallE3,
		Prompt:         fullPrompt,
		Size:           g.cfg.Background.Size,
		Quality:        openai.CreateImageQualityStandard,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
	})
	if err != nil {
		return "", fmt.Errorf("image request: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image API returned no data")
	}

	outFile := filepath.Join(outputDir, "background.png")
	if err := g.downloadImage(ctx, resp.Data[0].URL, outFile); err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}

	log.Printf("[background] ✅ Background saved: %s", outFile)
	return outFile, nil
}

func (g *Generator) downloadImage(ctx context.Context, imageURL, outFile string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d fetching generated image", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Guard against error pages served in place of image bytes
	if len(data) < 100 {
		return fmt.Errorf("response too small (%d bytes) — likely an error", len(data))
	}

	return os.WriteFile(outFile, data, 0644)
}
