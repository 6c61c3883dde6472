package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Video      VideoConfig      `yaml:"video"`
	Voice      VoiceConfig      `yaml:"voice"`
	Background BackgroundConfig `yaml:"background"`
	Thumbnail  ThumbnailConfig  `yaml:"thumbnail"`
	Music      MusicConfig      `yaml:"music"`
	Paths      PathsConfig      `yaml:"paths"`
}

type VideoConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	FPS          int     `yaml:"fps"`
	FadeSec      float64 `yaml:"fade_sec"`
	OverlayText  string  `yaml:"overlay_text"`
	AudioBitrate string  `yaml:"audio_bitrate"`
}

type VoiceConfig struct {
	Model string `yaml:"model"`
	Voice string `yaml:"voice"`
}

type BackgroundConfig struct {
	Size          string `yaml:"size"`
	DefaultPrompt string `yaml:"default_prompt"`
}

type ThumbnailConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Size          string `yaml:"size"`
	DefaultPrompt string `yaml:"default_prompt"`
}

type MusicConfig struct {
	Enabled bool    `yaml:"enabled"`
	Type    string  `yaml:"type"`
	Volume  float64 `yaml:"volume"`
}

type PathsConfig struct {
	Script string `yaml:"script"`
	Output string `yaml:"output"`
}

// Default returns the configuration used when no config.yaml is present.
func Default() *Config {
	return &Config{
		Video: VideoConfig{
			Width:        1920,
			Height:       1080,
			FPS:          30,
			FadeSec:      2.0,
			AudioBitrate: "128k",
		},
		Voice: VoiceConfig{
			Model: "tts-1",
			Voice: "nova",
		},
		Background: BackgroundConfig{
			Size:          "1792x1024",
			DefaultPrompt: "peaceful starry night sky with gentle waves",
		},
		Thumbnail: ThumbnailConfig{
			Width:         1280,
			Height:        720,
			Size:          "1792x1024",
			DefaultPrompt: "calm night sky with soft glowing stars and relaxing sleep text",
		},
		Music: MusicConfig{
			Enabled: false,
			Type:    "ambient",
			Volume:  0.2,
		},
		Paths: PathsConfig{
			Script: "script.txt",
			Output: "out",
		},
	}
}

// Load reads config.yaml and returns a Config struct. A missing file is not
// an error: the tool runs on defaults out of the box. Unmarshalling lands on
// a pre-populated Config, so keys absent from the file keep their defaults
// while explicitly set values — including zeros like fade_sec: 0 — win.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
