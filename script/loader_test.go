package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		want    string
		wantErr string
	}{
		{
			name:    "valid script",
			content: "Close your eyes and breathe.",
			create:  true,
			want:    "Close your eyes and breathe.",
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "\n\n  Drift away.  \n",
			create:  true,
			want:    "Drift away.",
		},
		{
			name:    "empty file",
			content: "   \n\t\n",
			create:  true,
			wantErr: "empty",
		},
		{
			name:    "missing file",
			create:  false,
			wantErr: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".txt")
			if tt.create {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}

			got, err := Load(path)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
