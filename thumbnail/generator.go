package thumbnail

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

// Generator creates YouTube thumbnails via the OpenAI image API. Each
// attempt in the accept/regenerate/edit loop gets its own numbered file so
// the user can compare candidates.
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

// Run generates thumbnail_<counter>.png for the given prompt. On API or
// download failure it falls back to a locally drawn text-on-gradient image.
func (g *Generator) Run(ctx context.Context, prompt, outputDir string, counter int) (string, error) {
	path, err := g.generate(ctx, prompt, outputDir, counter)
	if err != nil {
		log.Printf("[thumbnail] Generation failed: %v — drawing fallback thumbnail", err)
		return Fallback(outputDir, counter, prompt, g.cfg.Thumbnail.Width, g.cfg.Thumbnail.Height)
	}
	return path, nil
}

func (g *Generator) generate(ctx context.Context, prompt, outputDir string, counter int) (string, error) {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set — check your .env file")
	}

	fullPrompt := fmt.Sprintf(
		"YouTube thumbnail: %s, 16:9 aspect ratio, eye-catching, high quality, vibrant colors, professional look",
		prompt,
	)

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          openai.CreateImageModelDallE3,
		Prompt:         fullPrompt,
		Size:           g.cfg.Thumbnail.Size,
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

	outFile := filepath.Join(outputDir, fmt.Sprintf("thumbnail_%d.png", counter))
	if err := g.downloadImage(ctx, resp.Data[0].URL, outFile); err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}

	log.Printf("[thumbnail] ✅ Thumbnail saved: %s", outFile)
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

	if len(data) < 100 {
		return fmt.Errorf("response too small (%d bytes) — likely an error", len(data))
	}

	return os.WriteFile(outFile, data, 0644)
}
