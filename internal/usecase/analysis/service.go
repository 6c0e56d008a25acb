package analysis

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meeting-lens-team/meeting-lens/errors"
	"github.com/meeting-lens-team/meeting-lens/internal/domain/entities"
)

// ModelClient is the language model collaborator. It receives the fixed
// instruction prompt plus the formatted transcript and returns the raw
// response text.
type ModelClient interface {
	GenerateAnalysis(ctx context.Context, model, instructions, transcript string) (string, error)
}

// Transcriber is the transcription and diarization collaborator. It returns
// speaker-tagged utterances in spoken order, or an error when the job does
// not reach a completed state with speaker output.
type Transcriber interface {
	TranscribeFile(ctx context.Context, media io.Reader) ([]entities.Utterance, error)
}

// Service orchestrates one analysis request: transcription for uploads, then
// a single model call, then parse and shape validation. Each request is
// independent; the service holds no mutable state.
type Service struct {
	model       ModelClient
	transcriber Transcriber
	parser      *Parser
	timeout     time.Duration
	logger      *zap.Logger
}

// NewService constructs an analysis service. timeout bounds the whole
// external call chain for one request; zero disables the bound.
func NewService(model ModelClient, transcriber Transcriber, timeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		model:       model,
		transcriber: transcriber,
		parser:      NewParser(),
		timeout:     timeout,
		logger:      logger,
	}
}

// AnalyzeText runs the analysis chain over an already-labeled transcript
// string.
func (s *Service) AnalyzeText(ctx context.Context, transcript, model string) (*entities.Analysis, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()

	requestID := uuid.NewString()
	log := s.requestLogger(requestID, model)
	log.Info("analyzing text transcript", zap.Int("transcript_length", len(transcript)))

	return s.analyze(ctx, log, transcript, model)
}

// AnalyzeFile transcribes the uploaded media with speaker diarization, then
// runs the same analysis chain over the formatted result. The returned
// labeled transcript lists each detected speaker once, in first-seen order.
func (s *Service) AnalyzeFile(ctx context.Context, media io.Reader, model string) (*entities.Analysis, *entities.LabeledTranscript, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()

	requestID := uuid.NewString()
	log := s.requestLogger(requestID, model)
	log.Info("transcribing uploaded media")

	utterances, err := s.transcriber.TranscribeFile(ctx, media)
	if err != nil {
		log.Error("transcription failed", zap.Error(err))
		return nil, nil, apperrors.ErrTranscriptionFailed(err)
	}

	labeled := BuildLabeledTranscript(utterances)
	log.Info("transcription completed",
		zap.Int("utterance_count", len(labeled.Transcript)),
		zap.Int("speaker_count", len(labeled.Speakers)),
	)

	analysis, err := s.analyze(ctx, log, formatEntries(labeled.Transcript), model)
	if err != nil {
		return nil, nil, err
	}
	return analysis, labeled, nil
}

// analyze sends the formatted transcript to the model and validates the
// response. No retries: any failure discards the request.
func (s *Service) analyze(ctx context.Context, log *zap.Logger, transcript, model string) (*entities.Analysis, error) {
	raw, err := s.model.GenerateAnalysis(ctx, model, instructionPrompt, transcript)
	if err != nil {
		log.Error("model invocation failed", zap.Error(err))
		return nil, apperrors.ErrModelInvocationFailed(err)
	}

	result, err := s.parser.ParseAnalysis(raw)
	if err != nil {
		log.Error("model response rejected", zap.Error(err))
		return nil, apperrors.ErrResponseParseFailed(err)
	}

	if drift := s.parser.DominanceDrift(result); drift > 1 {
		log.Warn("dominance percentages do not sum to 100", zap.Float64("drift", drift))
	}

	log.Info("analysis completed",
		zap.Int("sentiments", len(result.KeySentiments)),
		zap.Int("interruptions", len(result.Interruptions)),
		zap.Int("action_items", len(result.ActionItems)),
	)
	return result, nil
}

func (s *Service) boundCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) requestLogger(requestID, model string) *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger.With(
		zap.String("request_id", requestID),
		zap.String("model", model),
	)
}

// BuildLabeledTranscript maps diarized utterances to display form: raw
// diarization labels become "Speaker <label>", and the speaker list keeps
// set semantics while preserving first-seen order.
func BuildLabeledTranscript(utterances []entities.Utterance) *entities.LabeledTranscript {
	seen := make(map[string]struct{}, 4)
	labeled := &entities.LabeledTranscript{
		Speakers:   make([]string, 0, 4),
		Transcript: make([]entities.TranscriptEntry, 0, len(utterances)),
	}
	for _, utt := range utterances {
		speaker := "Speaker " + utt.Speaker
		if _, ok := seen[speaker]; !ok {
			seen[speaker] = struct{}{}
			labeled.Speakers = append(labeled.Speakers, speaker)
		}
		labeled.Transcript = append(labeled.Transcript, entities.TranscriptEntry{
			Speaker: speaker,
			Text:    utt.Text,
		})
	}
	return labeled
}

// formatEntries reuses the transcript formatter over display entries.
func formatEntries(entries []entities.TranscriptEntry) string {
	utterances := make([]entities.Utterance, len(entries))
	for i, e := range entries {
		utterances[i] = entities.Utterance{Speaker: e.Speaker, Text: e.Text}
	}
	return FormatTranscript(utterances)
}
