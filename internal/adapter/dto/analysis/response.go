package analysis

import (
	"github.com/meeting-lens-team/meeting-lens/internal/domain/entities"
)

// AnalyzeResponse is the success body of the analyze call. LabeledTranscript
// is present only on the file-upload path.
type AnalyzeResponse struct {
	Analysis          *entities.Analysis          `json:"analysis"`
	LabeledTranscript *entities.LabeledTranscript `json:"labeledTranscript,omitempty"`
}

// RenameResponse is the success body of the rename call.
type RenameResponse struct {
	Analysis *entities.Analysis `json:"analysis"`
}

// ErrorResponse is the body of every failure response.
type ErrorResponse struct {
	Error string `json:"error"`
}
