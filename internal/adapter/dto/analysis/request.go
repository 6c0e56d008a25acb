package analysis

import (
	"github.com/meeting-lens-team/meeting-lens/internal/domain/entities"
)

// DefaultModel is used when the caller omits the model field.
const DefaultModel = "gemini-1.5-flash"

// AnalyzeTextRequest is the JSON body of the text-mode analyze call. The
// transcript already carries speaker labels.
type AnalyzeTextRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	Model      string `json:"model" validate:"required,oneof=gemini-1.5-flash gemini-1.5-pro"`
}

// ValidModel reports whether the model identifier is on the allow-list.
func ValidModel(model string) bool {
	switch model {
	case "gemini-1.5-flash", "gemini-1.5-pro":
		return true
	}
	return false
}

// RenameRequest applies a speaker-name mapping to a previously returned
// analysis. Labels absent from the map keep their original form.
type RenameRequest struct {
	Analysis entities.Analysis `json:"analysis" validate:"required"`
	Names    map[string]string `json:"names" validate:"required"`
}
