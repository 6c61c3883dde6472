package types

// VideoMetadata is the record written to metadata.json once the pipeline
// finishes. It is the YouTube-ready description of a single run's output.
type VideoMetadata struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Files       FileSet        `json:"files"`
	Paths       FileSet        `json:"paths"`
	Generation  GenerationInfo `json:"generation_info"`
	YouTube     *YouTubeInfo   `json:"youtube_info,omitempty"`
}

// FileSet names the four artifacts of a run. Used twice in the metadata
// record: once with basenames, once with full paths. Thumbnail is empty
// when the user skipped thumbnail generation.
type FileSet struct {
	Video      string `json:"video"`
	Voiceover  string `json:"voiceover"`
	Background string `json:"background"`
	Thumbnail  string `json:"thumbnail,omitempty"`
}

type GenerationInfo struct {
	CreatedAt       string `json:"created_at"`
	OutputDirectory string `json:"output_directory"`
}

// YouTubeInfo is filled in after a manual upload via UpdateUploadInfo.
type YouTubeInfo struct {
	VideoID      string `json:"video_id,omitempty"`
	URL          string `json:"url,omitempty"`
	UploadStatus string `json:"upload_status,omitempty"`
	UploadedAt   string `json:"uploaded_at,omitempty"`
}

// SessionState tracks artifact paths across one pipeline run and is saved
// as session_state.json when the run ends, successfully or not.
type SessionState struct {
	RunID          string `json:"run_id"`
	StartedAt      string `json:"started_at"`
	CompletedAt    string `json:"completed_at,omitempty"`
	ScriptChars    int    `json:"script_chars,omitempty"`
	BackgroundPath string `json:"background_path,omitempty"`
	VoiceoverPath  string `json:"voiceover_path,omitempty"`
	VideoPath      string `json:"video_path,omitempty"`
	ThumbnailPath  string `json:"thumbnail_path,omitempty"`
	MetadataPath   string `json:"metadata_path,omitempty"`
	Error          string `json:"error,omitempty"`
}
