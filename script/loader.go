package script

import (
	"fmt"
	"os"
	"strings"
)

// Load reads the narration script from path and returns its trimmed content.
// An absent or empty file ends the session before any API call is made.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file %q not found — create a script file with your narration text", path)
		}
		return "", fmt.Errorf("read script: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return "", fmt.Errorf("script file %q is empty — add content before generating", path)
	}
	return content, nil
}
