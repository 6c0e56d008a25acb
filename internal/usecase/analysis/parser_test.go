package analysis

import (
	"strings"
	"testing"
)

const validAnalysisJSON = `{
  "summary": "A Q3 sync covering the auth module and a schema delay.",
  "speaker_dominance": [
    {"speaker": "Sarah", "percentage": 30},
    {"speaker": "Mark", "percentage": 40},
    {"speaker": "David", "percentage": 30}
  ],
  "key_sentiments": [
    {"speaker": "David", "sentiment": "Negative", "quote": "We can't afford delays."}
  ],
  "interruptions": [
    {"interrupter": "David", "interrupted": "Mark", "context": "we had to..."}
  ],
  "action_items": [
    {"task": "Sync on the schema issue", "assigned_to": "Lena", "due_date": "end of day tomorrow"}
  ]
}`

func TestParseAnalysis_Valid(t *testing.T) {
	p := NewParser()
	got, err := p.ParseAnalysis(validAnalysisJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Summary == "" {
		t.Error("summary is empty")
	}
	if len(got.SpeakerDominance) != 3 {
		t.Errorf("expected 3 dominance entries, got %d", len(got.SpeakerDominance))
	}
	if got.KeySentiments[0].Sentiment != "Negative" {
		t.Errorf("sentiment = %q", got.KeySentiments[0].Sentiment)
	}
}

func TestParseAnalysis_MarkdownFences(t *testing.T) {
	p := NewParser()
	wrapped := "```json\n" + validAnalysisJSON + "\n```"
	if _, err := p.ParseAnalysis(wrapped); err != nil {
		t.Fatalf("fenced JSON rejected: %v", err)
	}

	bare := "```\n" + validAnalysisJSON + "\n```"
	if _, err := p.ParseAnalysis(bare); err != nil {
		t.Fatalf("bare-fenced JSON rejected: %v", err)
	}
}

func TestParseAnalysis_NotJSON(t *testing.T) {
	p := NewParser()
	if _, err := p.ParseAnalysis("I'm sorry, I cannot analyze this transcript."); err == nil {
		t.Fatal("expected error for prose response")
	}
}

func TestParseAnalysis_MissingSummary(t *testing.T) {
	p := NewParser()
	_, err := p.ParseAnalysis(`{"summary": "", "speaker_dominance": [], "key_sentiments": [], "interruptions": [], "action_items": []}`)
	if err == nil || !strings.Contains(err.Error(), "summary") {
		t.Fatalf("expected missing-summary error, got %v", err)
	}
}

func TestParseAnalysis_UnknownSentiment(t *testing.T) {
	p := NewParser()
	_, err := p.ParseAnalysis(`{
	  "summary": "s",
	  "speaker_dominance": [],
	  "key_sentiments": [{"speaker": "A", "sentiment": "Angry", "quote": "q"}],
	  "interruptions": [],
	  "action_items": []
	}`)
	if err == nil || !strings.Contains(err.Error(), "sentiment") {
		t.Fatalf("expected sentiment error, got %v", err)
	}
}

func TestParseAnalysis_WrongFieldType(t *testing.T) {
	p := NewParser()
	_, err := p.ParseAnalysis(`{
	  "summary": "s",
	  "speaker_dominance": [{"speaker": "A", "percentage": "sixty"}],
	  "key_sentiments": [],
	  "interruptions": [],
	  "action_items": []
	}`)
	if err == nil {
		t.Fatal("expected error for string percentage")
	}
}

func TestParseAnalysis_PercentageOutOfRange(t *testing.T) {
	p := NewParser()
	_, err := p.ParseAnalysis(`{
	  "summary": "s",
	  "speaker_dominance": [{"speaker": "A", "percentage": 160}],
	  "key_sentiments": [],
	  "interruptions": [],
	  "action_items": []
	}`)
	if err == nil {
		t.Fatal("expected error for out-of-range percentage")
	}
}

func TestParseAnalysis_InitializesNilLists(t *testing.T) {
	p := NewParser()
	got, err := p.ParseAnalysis(`{"summary": "short meeting"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SpeakerDominance == nil || got.KeySentiments == nil || got.Interruptions == nil || got.ActionItems == nil {
		t.Fatalf("nil lists not initialized: %+v", got)
	}
}

func TestDominanceDrift(t *testing.T) {
	p := NewParser()

	got, err := p.ParseAnalysis(validAnalysisJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drift := p.DominanceDrift(got); drift != 0 {
		t.Errorf("drift = %v for percentages summing to 100", drift)
	}

	got.SpeakerDominance[0].Percentage = 25
	if drift := p.DominanceDrift(got); drift != 5 {
		t.Errorf("drift = %v, want 5", drift)
	}
}
