package prompt

import (
	"fmt"
	"math"
	"strings"

	"ytsummarizer/models"
)

// FormatTimestamp converts a seconds offset to MM:SS. Minutes are not
// wrapped into hours, so 7384s renders as "123:04".
func FormatTimestamp(seconds float64) string {
	minutes := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// RenderTranscript flattens segments into "[MM:SS] text" lines, one per
// segment, newline-terminated, in playback order. The full transcript is
// passed through with no truncation.
func RenderTranscript(segments []models.TranscriptSegment) string {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteString("[")
		b.WriteString(FormatTimestamp(segment.Start))
		b.WriteString("] ")
		b.WriteString(segment.Text)
		b.WriteString("\n")
	}
	return b.String()
}
