package metadata

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir,
		"Starry Night Sleep",
		"A calm journey.\nSecond line.",
		filepath.Join(dir, "output.mp4"),
		filepath.Join(dir, "voiceover.mp3"),
		filepath.Join(dir, "background.png"),
		filepath.Join(dir, "thumbnail_2.png"),
	)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "metadata.json" {
		t.Errorf("Expected metadata.json, got %s", filepath.Base(path))
	}

	meta, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Title != "Starry Night Sleep" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Description != "A calm journey.\nSecond line." {
		t.Errorf("Description = %q", meta.Description)
	}
	if meta.Files.Video != "output.mp4" {
		t.Errorf("Files.Video = %q, want basename", meta.Files.Video)
	}
	if meta.Files.Thumbnail != "thumbnail_2.png" {
		t.Errorf("Files.Thumbnail = %q", meta.Files.Thumbnail)
	}
	if meta.Paths.Background != filepath.Join(dir, "background.png") {
		t.Errorf("Paths.Background = %q, want full path", meta.Paths.Background)
	}
	if meta.Generation.CreatedAt == "" {
		t.Error("Generation.CreatedAt not set")
	}
	if meta.Generation.OutputDirectory != dir {
		t.Errorf("Generation.OutputDirectory = %q", meta.Generation.OutputDirectory)
	}
	if meta.YouTube != nil {
		t.Error("YouTube info should be absent before upload")
	}
}

func TestSave_NoThumbnail(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "T", "D", "v.mp4", "a.mp3", "b.png", "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	meta, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Files.Thumbnail != "" || meta.Paths.Thumbnail != "" {
		t.Errorf("Thumbnail should be empty when skipped, got %q / %q",
			meta.Files.Thumbnail, meta.Paths.Thumbnail)
	}
}

func TestUpdateUploadInfo(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "T", "D", "v.mp4", "a.mp3", "b.png", "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := UpdateUploadInfo(path, "dQw4w9WgXcQ", "public"); err != nil {
		t.Fatalf("UpdateUploadInfo: %v", err)
	}

	meta, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.YouTube == nil {
		t.Fatal("YouTube info not recorded")
	}
	if meta.YouTube.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", meta.YouTube.VideoID)
	}
	if meta.YouTube.URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("URL = %q", meta.YouTube.URL)
	}
	if meta.YouTube.UploadStatus != "public" {
		t.Errorf("UploadStatus = %q", meta.YouTube.UploadStatus)
	}
	if meta.YouTube.UploadedAt == "" {
		t.Error("UploadedAt not set")
	}
	// The original record survives the update
	if meta.Title != "T" {
		t.Errorf("Title lost on update: %q", meta.Title)
	}
}

func TestDescriptionTemplate(t *testing.T) {
	tpl := DescriptionTemplate("Deep Sleep Journey", "Eight hours of calm.")

	if !strings.HasPrefix(tpl, "Deep Sleep Journey\n") {
		t.Error("Template should open with the title")
	}
	for _, want := range []string{
		"Eight hours of calm.",
		"Sleep and relaxation",
		"use headphones",
		"#Sleep",
	} {
		if !strings.Contains(tpl, want) {
			t.Errorf("Template missing %q", want)
		}
	}
}
