package analysis

import (
	"strings"

	"github.com/meeting-lens-team/meeting-lens/internal/domain/entities"
)

// FormatTranscript renders diarized utterances as model input, one
// "<speaker>: <text>" line per utterance, in input order. Whitespace inside
// the text is left exactly as received.
func FormatTranscript(utterances []entities.Utterance) string {
	var sb strings.Builder
	for i, utt := range utterances {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(utt.Speaker)
		sb.WriteString(": ")
		sb.WriteString(utt.Text)
	}
	return sb.String()
}
