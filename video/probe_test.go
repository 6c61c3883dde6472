package video

import "testing"

func TestParseAudioProbe(t *testing.T) {
	tests := []struct {
		name       string
		out        string
		hasAudio   bool
		duration   float64
		sampleRate int
	}{
		{
			name:     "no audio stream",
			out:      "",
			hasAudio: false,
		},
		{
			name:       "full stream info",
			out:        "sample_rate=44100\nduration=182.503000\n",
			hasAudio:   true,
			duration:   182.503,
			sampleRate: 44100,
		},
		{
			name:       "sample rate only",
			out:        "sample_rate=24000\nduration=N/A\n",
			hasAudio:   true,
			sampleRate: 24000,
		},
		{
			name:     "garbage lines ignored",
			out:      "[STREAM]\nsomething else\n[/STREAM]\n",
			hasAudio: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := parseAudioProbe(tt.out)
			if info.HasAudio != tt.hasAudio {
				t.Errorf("HasAudio = %v, want %v", info.HasAudio, tt.hasAudio)
			}
			if info.Duration != tt.duration {
				t.Errorf("Duration = %f, want %f", info.Duration, tt.duration)
			}
			if info.SampleRate != tt.sampleRate {
				t.Errorf("SampleRate = %d, want %d", info.SampleRate, tt.sampleRate)
			}
		})
	}
}
