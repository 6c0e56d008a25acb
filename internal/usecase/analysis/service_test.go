package analysis

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/meeting-lens-team/meeting-lens/errors"
	"github.com/meeting-lens-team/meeting-lens/internal/domain/entities"
)

type fakeModel struct {
	response   string
	err        error
	gotModel   string
	gotPrompt  string
	gotContent string
}

func (f *fakeModel) GenerateAnalysis(_ context.Context, model, instructions, transcript string) (string, error) {
	f.gotModel = model
	f.gotPrompt = instructions
	f.gotContent = transcript
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeTranscriber struct {
	utterances []entities.Utterance
	err        error
}

func (f *fakeTranscriber) TranscribeFile(_ context.Context, _ io.Reader) ([]entities.Utterance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.utterances, nil
}

func TestAnalyzeText_Success(t *testing.T) {
	model := &fakeModel{response: validAnalysisJSON}
	svc := NewService(model, &fakeTranscriber{}, 0, nil)

	got, err := svc.AnalyzeText(context.Background(), "Sarah: hello\nMark: hi", "gemini-1.5-flash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Summary == "" {
		t.Error("summary is empty")
	}
	if model.gotModel != "gemini-1.5-flash" {
		t.Errorf("model = %q", model.gotModel)
	}
	if model.gotContent != "Sarah: hello\nMark: hi" {
		t.Errorf("transcript forwarded modified: %q", model.gotContent)
	}
	if !strings.Contains(model.gotPrompt, "valid JSON object") {
		t.Errorf("instruction prompt missing from model call")
	}
}

func TestAnalyzeText_ModelFailure(t *testing.T) {
	model := &fakeModel{err: errors.New("connection refused")}
	svc := NewService(model, &fakeTranscriber{}, 0, nil)

	_, err := svc.AnalyzeText(context.Background(), "Sarah: hello", "gemini-1.5-flash")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.ErrorCode_MODEL_INVOCATION_FAILED {
		t.Errorf("code = %v", appErr.Code)
	}
}

func TestAnalyzeText_ParseFailureSurfacesRawError(t *testing.T) {
	model := &fakeModel{response: "this is not json"}
	svc := NewService(model, &fakeTranscriber{}, 0, nil)

	_, err := svc.AnalyzeText(context.Background(), "Sarah: hello", "gemini-1.5-flash")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.ErrorCode_RESPONSE_PARSE_FAILED {
		t.Errorf("code = %v", appErr.Code)
	}
	if appErr.Raw == nil {
		t.Error("raw parse error was swallowed")
	}
}

func TestAnalyzeFile_Success(t *testing.T) {
	model := &fakeModel{response: validAnalysisJSON}
	transcriber := &fakeTranscriber{utterances: []entities.Utterance{
		{Speaker: "A", Text: "Okay team, let's start."},
		{Speaker: "B", Text: "Sounds good."},
		{Speaker: "A", Text: "First item."},
	}}
	svc := NewService(model, transcriber, 0, nil)

	got, labeled, err := svc.AnalyzeFile(context.Background(), strings.NewReader("fake media"), "gemini-1.5-pro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("analysis is nil")
	}

	wantSpeakers := []string{"Speaker A", "Speaker B"}
	if !reflect.DeepEqual(labeled.Speakers, wantSpeakers) {
		t.Errorf("speakers = %v, want %v", labeled.Speakers, wantSpeakers)
	}
	if len(labeled.Transcript) != 3 {
		t.Fatalf("expected 3 transcript entries, got %d", len(labeled.Transcript))
	}
	if labeled.Transcript[0].Speaker != "Speaker A" {
		t.Errorf("first entry speaker = %q", labeled.Transcript[0].Speaker)
	}

	wantFormatted := "Speaker A: Okay team, let's start.\nSpeaker B: Sounds good.\nSpeaker A: First item."
	if model.gotContent != wantFormatted {
		t.Errorf("model input = %q, want %q", model.gotContent, wantFormatted)
	}
}

func TestAnalyzeFile_TranscriptionFailure(t *testing.T) {
	transcriber := &fakeTranscriber{err: errors.New("transcription did not complete: audio unreadable")}
	svc := NewService(&fakeModel{response: validAnalysisJSON}, transcriber, 0, nil)

	_, _, err := svc.AnalyzeFile(context.Background(), strings.NewReader("fake media"), "gemini-1.5-flash")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.ErrorCode_TRANSCRIPTION_FAILED {
		t.Errorf("code = %v", appErr.Code)
	}
}

func TestBuildLabeledTranscript_FirstSeenOrder(t *testing.T) {
	labeled := BuildLabeledTranscript([]entities.Utterance{
		{Speaker: "C", Text: "one"},
		{Speaker: "A", Text: "two"},
		{Speaker: "C", Text: "three"},
		{Speaker: "B", Text: "four"},
		{Speaker: "A", Text: "five"},
	})

	want := []string{"Speaker C", "Speaker A", "Speaker B"}
	if !reflect.DeepEqual(labeled.Speakers, want) {
		t.Fatalf("speakers = %v, want %v", labeled.Speakers, want)
	}
}
