package music

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindExisting(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		wantBase string
	}{
		{
			name:     "background_music.mp3 preferred",
			files:    []string{"background_music.mp3", "music.wav"},
			wantBase: "background_music.mp3",
		},
		{
			name:     "bgm with alternate extension",
			files:    []string{"bgm.aac"},
			wantBase: "bgm.aac",
		},
		{
			name:     "unrelated files ignored",
			files:    []string{"voiceover.mp3", "notes.txt"},
			wantBase: "",
		},
		{
			name:     "empty dir",
			files:    nil,
			wantBase: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
			}

			got := FindExisting(dir)
			if tt.wantBase == "" {
				if got != "" {
					t.Errorf("Expected no match, got %s", got)
				}
				return
			}
			if filepath.Base(got) != tt.wantBase {
				t.Errorf("Expected %s, got %s", tt.wantBase, filepath.Base(got))
			}
		})
	}
}

func TestTypes(t *testing.T) {
	types := Types()
	for _, want := range []string{"ambient", "nature", "meditation", "piano", "space", "silence"} {
		if _, ok := types[want]; !ok {
			t.Errorf("Types() missing %q", want)
		}
	}
}

func TestTrackURLsCoverAllMoods(t *testing.T) {
	for mood := range Types() {
		if mood == "silence" {
			continue
		}
		urls, ok := trackURLs[mood]
		if !ok || len(urls) == 0 {
			t.Errorf("No curated tracks for mood %q", mood)
		}
	}
}
