package main

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// prompter wraps stdin/stdout for the interactive steps so the flow can be
// tested against scripted input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// askLine prompts for a single line, returning def when the answer is blank.
func (p *prompter) askLine(label, def string) string {
	fmt.Fprint(p.out, label)
	line, _ := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" && def != "" {
		fmt.Fprintf(p.out, "Using default: %s\n", def)
		return def
	}
	return line
}

// askYesNo keeps asking until the user answers y/yes or n/no.
func (p *prompter) askYesNo(label string) bool {
	for {
		fmt.Fprintf(p.out, "%s (y/n): ", label)
		line, err := p.in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(p.out, "Please enter 'y' for yes or 'n' for no.")
	}
}

// thumbnail review answers
const (
	choiceAccept     = "accept"
	choiceRegenerate = "regenerate"
	choiceEditPrompt = "edit"
)

// askThumbnailChoice resolves the accept/regenerate/edit-prompt review
// answer, accepting single-letter aliases.
func (p *prompter) askThumbnailChoice() string {
	for {
		fmt.Fprint(p.out, "Do you like it? (accept / regenerate / edit prompt): ")
		line, err := p.in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "accept", "a":
			return choiceAccept
		case "regenerate", "r":
			return choiceRegenerate
		case "edit prompt", "edit", "e":
			return choiceEditPrompt
		}
		if err != nil {
			return choiceAccept
		}
		fmt.Fprintln(p.out, "Please enter 'accept', 'regenerate', or 'edit prompt'.")
	}
}

// askDescription reads a multi-line description terminated by two
// consecutive empty lines.
func (p *prompter) askDescription(label string) string {
	fmt.Fprintln(p.out, label)

	var lines []string
	emptyCount := 0
	for emptyCount < 2 {
		line, err := p.in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			emptyCount++
		} else {
			emptyCount = 0
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// openFile hands a produced file to the platform's default application.
func openFile(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
