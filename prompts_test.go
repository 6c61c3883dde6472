package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestAskLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"answer given", "starry sky\n", "default", "starry sky"},
		{"blank uses default", "\n", "default prompt", "default prompt"},
		{"whitespace uses default", "   \n", "default prompt", "default prompt"},
		{"blank without default", "\n", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
			if got := p.askLine("Prompt: ", tt.def); got != tt.want {
				t.Errorf("askLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAskLine_NoDefaultKeepsBlank(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\n"), &out)

	if got := p.askLine("Enter a YouTube title for your video: ", ""); got != "" {
		t.Errorf("Blank answer without a default should stay blank, got %q", got)
	}
	if strings.Contains(out.String(), "Using default") {
		t.Errorf("No default message expected, output: %q", out.String())
	}
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "YES\n", true},
		{"no", "n\n", false},
		{"no word", "No\n", false},
		{"retries until valid", "maybe\nok\ny\n", true},
		{"eof treated as no", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
			if got := p.askYesNo("View now?"); got != tt.want {
				t.Errorf("askYesNo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAskThumbnailChoice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accept", "accept\n", choiceAccept},
		{"accept alias", "a\n", choiceAccept},
		{"regenerate", "regenerate\n", choiceRegenerate},
		{"regenerate alias", "R\n", choiceRegenerate},
		{"edit prompt", "edit prompt\n", choiceEditPrompt},
		{"edit alias", "e\n", choiceEditPrompt},
		{"retries until valid", "nope\naccept\n", choiceAccept},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
			if got := p.askThumbnailChoice(); got != tt.want {
				t.Errorf("askThumbnailChoice = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAskDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "two blank lines end input",
			input: "First line\nSecond line\n\n\n",
			want:  "First line\nSecond line",
		},
		{
			name:  "single blank line kept inside",
			input: "Para one\n\nPara two\n\n\n",
			want:  "Para one\n\nPara two",
		},
		{
			name:  "empty description",
			input: "\n\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
			if got := p.askDescription("Enter description:"); got != tt.want {
				t.Errorf("askDescription = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompatOutputPath(t *testing.T) {
	if got := compatOutputPath("out/abc/output.mp4"); got != "out/abc/output_compat.mp4" {
		t.Errorf("compatOutputPath = %q", got)
	}
}
