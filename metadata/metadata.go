package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sleep-video-pipeline/types"
)

// Save writes metadata.json for a finished run. thumbnailPath may be empty
// when the user skipped thumbnail generation.
func Save(outputDir, title, description, videoPath, voiceoverPath, backgroundPath, thumbnailPath string) (string, error) {
	meta := &types.VideoMetadata{
		Title:       title,
		Description: description,
		Files: types.FileSet{
			Video:      filepath.Base(videoPath),
			Voiceover:  filepath.Base(voiceoverPath),
			Background: filepath.Base(backgroundPath),
		},
		Paths: types.FileSet{
			Video:      videoPath,
			Voiceover:  voiceoverPath,
			Background: backgroundPath,
			Thumbnail:  thumbnailPath,
		},
		Generation: types.GenerationInfo{
			CreatedAt:       time.Now().Format(time.RFC3339),
			OutputDirectory: outputDir,
		},
	}
	if thumbnailPath != "" {
		meta.Files.Thumbnail = filepath.Base(thumbnailPath)
	}

	metaPath := filepath.Join(outputDir, "metadata.json")
	if err := writeJSON(metaPath, meta); err != nil {
		return "", err
	}
	return metaPath, nil
}

// Load reads a metadata.json back.
func Load(path string) (*types.VideoMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var meta types.VideoMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return &meta, nil
}

// UpdateUploadInfo records a manual YouTube upload in an existing
// metadata.json.
func UpdateUploadInfo(metaPath, videoID, status string) error {
	meta, err := Load(metaPath)
	if err != nil {
		return err
	}

	if meta.YouTube == nil {
		meta.YouTube = &types.YouTubeInfo{}
	}
	if videoID != "" {
		meta.YouTube.VideoID = videoID
		meta.YouTube.URL = "https://www.youtube.com/watch?v=" + videoID
	}
	if status != "" {
		meta.YouTube.UploadStatus = status
		meta.YouTube.UploadedAt = time.Now().Format(time.RFC3339)
	}

	return writeJSON(metaPath, meta)
}

// DescriptionTemplate builds a ready-to-paste YouTube description around the
// user's custom text.
func DescriptionTemplate(title, custom string) string {
	return fmt.Sprintf(`%s

%s

Perfect for:
• Sleep and relaxation
• Meditation and mindfulness
• Stress relief
• Background ambiance
• Study or work focus

For the best experience, use headphones or quality speakers.

Please do not drive or operate machinery while listening.

Subscribe for more relaxing content!

#Sleep #Relaxation #Meditation #ASMR #Peaceful #Calm #RestfulSleep #SleepAid`, title, custom)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	return nil
}
