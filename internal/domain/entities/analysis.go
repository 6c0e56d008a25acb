package entities

// Sentiment classification values the language model is allowed to emit.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// Placeholder values the model emits for unresolved action item fields.
const (
	AssigneeUnassigned  = "Unassigned"
	DueDateNotSpecified = "Not specified"
)

// Analysis is the structured result returned by the language model for one
// transcript. It is created once per request and never mutated; the rename
// engine works on a Clone.
type Analysis struct {
	Summary          string             `json:"summary"`
	SpeakerDominance []SpeakerDominance `json:"speaker_dominance"`
	KeySentiments    []KeySentiment     `json:"key_sentiments"`
	Interruptions    []Interruption     `json:"interruptions"`
	ActionItems      []ActionItem       `json:"action_items"`
}

// SpeakerDominance is the share of the conversation attributed to one
// speaker. Percentages across all entries are expected to sum to 100; that
// invariant is the model's, not ours.
type SpeakerDominance struct {
	Speaker    string  `json:"speaker"`
	Percentage float64 `json:"percentage"`
}

// KeySentiment captures a strongly positive or negative moment with the
// quote that carries it.
type KeySentiment struct {
	Speaker   string `json:"speaker"`
	Sentiment string `json:"sentiment"`
	Quote     string `json:"quote"`
}

// Interruption records one speaker cutting another off mid-sentence.
type Interruption struct {
	Interrupter string `json:"interrupter"`
	Interrupted string `json:"interrupted"`
	Context     string `json:"context"`
}

// ActionItem is an explicit task stated in the meeting.
type ActionItem struct {
	Task       string `json:"task"`
	AssignedTo string `json:"assigned_to"`
	DueDate    string `json:"due_date"`
}

// Utterance is one diarized speech segment from the transcription service.
// Times are in seconds from the start of the recording.
type Utterance struct {
	Speaker    string  `json:"speaker"`
	Text       string  `json:"text"`
	StartTime  float64 `json:"start_time,omitempty"`
	EndTime    float64 `json:"end_time,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// LabeledTranscript is the speaker-segmented transcript built on the file
// upload path. Speakers holds each label once, in first-seen order.
type LabeledTranscript struct {
	Speakers   []string          `json:"speakers"`
	Transcript []TranscriptEntry `json:"transcript"`
}

// TranscriptEntry is a single line of a labeled transcript.
type TranscriptEntry struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Clone returns a deep copy of the analysis. Slice elements hold only value
// types, so copying the backing arrays is enough.
func (a *Analysis) Clone() *Analysis {
	if a == nil {
		return nil
	}
	out := &Analysis{
		Summary:          a.Summary,
		SpeakerDominance: make([]SpeakerDominance, len(a.SpeakerDominance)),
		KeySentiments:    make([]KeySentiment, len(a.KeySentiments)),
		Interruptions:    make([]Interruption, len(a.Interruptions)),
		ActionItems:      make([]ActionItem, len(a.ActionItems)),
	}
	copy(out.SpeakerDominance, a.SpeakerDominance)
	copy(out.KeySentiments, a.KeySentiments)
	copy(out.Interruptions, a.Interruptions)
	copy(out.ActionItems, a.ActionItems)
	return out
}
