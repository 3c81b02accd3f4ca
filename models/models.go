package models

// TranscriptSegment is one timed unit of caption text. Segments are kept in
// playback order; Start and Duration are seconds.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// SummaryResult is the output of summarizing a transcript.
type SummaryResult struct {
	Summary       string `json:"summary"`
	TotalDuration string `json:"total_duration"`
	SnippetCount  int    `json:"snippet_count"`
}

// ProcessResult is the full response for a process_video request.
type ProcessResult struct {
	Summary       string              `json:"summary"`
	TotalDuration string              `json:"total_duration"`
	SnippetCount  int                 `json:"snippet_count"`
	VideoID       string              `json:"video_id"`
	Transcript    []TranscriptSegment `json:"transcript_data"`
}

type ProcessVideoRequest struct {
	VideoURL string `json:"video_url"`
	APIKey   string `json:"api_key,omitempty"`
}

type ChatRequest struct {
	Question   string              `json:"question"`
	VideoID    string              `json:"video_id"`
	Transcript []TranscriptSegment `json:"transcript_data"`
	Summary    string              `json:"summary"`
	APIKey     string              `json:"api_key,omitempty"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

type ValidateKeyRequest struct {
	APIKey string `json:"api_key"`
}

type ValidateKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
