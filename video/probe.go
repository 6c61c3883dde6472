package video

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// AudioInfo describes the audio track of a rendered video, if present.
type AudioInfo struct {
	HasAudio   bool
	Duration   float64
	SampleRate int
}

// ProbeDuration uses ffprobe to get accurate media duration in seconds
func ProbeDuration(path string) (float64, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	var dur float64
	_, err = fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &dur)
	return dur, err
}

// ProbeAudio reports whether a video carries an audio stream and, when it
// does, its duration and sample rate. Used by the check-audio command to
// catch silent renders.
func ProbeAudio(path string) (*AudioInfo, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=sample_rate,duration",
		"-of", "default=noprint_wrappers=1",
		path,
	).Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}

	info := parseAudioProbe(string(out))
	return info, nil
}

// parseAudioProbe reads ffprobe's key=value stream output. An empty output
// means the file has no audio stream at all.
func parseAudioProbe(out string) *AudioInfo {
	info := &AudioInfo{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found {
			continue
		}
		switch key {
		case "sample_rate":
			if rate, err := strconv.Atoi(value); err == nil {
				info.SampleRate = rate
				info.HasAudio = true
			}
		case "duration":
			if dur, err := strconv.ParseFloat(value, 64); err == nil {
				info.Duration = dur
				info.HasAudio = true
			}
		}
	}
	return info
}
