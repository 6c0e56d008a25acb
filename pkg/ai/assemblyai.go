package ai

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"

	"github.com/meeting-lens-team/meeting-lens/internal/domain/entities"
	"github.com/meeting-lens-team/meeting-lens/pkg/config"
)

// AssemblyAIClient transcribes uploaded media through the official AssemblyAI
// SDK with speaker diarization enabled. A semaphore bounds concurrent uploads
// so a burst of file requests cannot saturate the connection.
type AssemblyAIClient struct {
	sdk             *aai.Client
	apiKey          string
	pollInterval    time.Duration
	uploadSemaphore chan struct{}
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	pollInterval := 3 * time.Second
	maxConcurrent := 2
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.PollInterval > 0 {
			pollInterval = cfg.PollInterval
		}
		if cfg.MaxConcurrent > 0 {
			maxConcurrent = cfg.MaxConcurrent
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{
		sdk:             aai.NewClient(apiKey),
		apiKey:          apiKey,
		pollInterval:    pollInterval,
		uploadSemaphore: make(chan struct{}, maxConcurrent),
	}
}

// TranscribeFile uploads the media stream, requests transcription with
// speaker labels, and polls until the job reaches a terminal status. It
// returns the diarized utterances in spoken order.
func (c *AssemblyAIClient) TranscribeFile(ctx context.Context, media io.Reader) ([]entities.Utterance, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("assemblyai api key is not configured")
	}

	// Acquire an upload slot; blocks if the pool is saturated.
	select {
	case c.uploadSemaphore <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-c.uploadSemaphore }()

	uploadURL, err := c.sdk.Upload(ctx, media)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	submitted, err := c.sdk.Transcripts.SubmitFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transcription: %w", err)
	}
	if submitted.ID == nil {
		return nil, fmt.Errorf("transcription job has no id")
	}

	transcript, err := c.waitForTranscript(ctx, *submitted.ID)
	if err != nil {
		return nil, err
	}

	if len(transcript.Utterances) == 0 {
		return nil, fmt.Errorf("transcript %s has no speaker-segmented output", *submitted.ID)
	}
	return mapUtterances(transcript.Utterances), nil
}

// waitForTranscript polls the transcript status until it is terminal. The
// backoff paces the poll; status "error" is permanent and stops it
// immediately.
func (c *AssemblyAIClient) waitForTranscript(ctx context.Context, transcriptID string) (aai.Transcript, error) {
	var transcript aai.Transcript

	poll := func() error {
		t, err := c.sdk.Transcripts.Get(ctx, transcriptID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to poll transcript %s: %w", transcriptID, err))
		}
		switch t.Status {
		case aai.TranscriptStatusCompleted:
			transcript = t
			return nil
		case aai.TranscriptStatusError:
			msg := "transcription failed"
			if t.Error != nil {
				msg = *t.Error
			}
			return backoff.Permanent(fmt.Errorf("transcription did not complete: %s", msg))
		default:
			return fmt.Errorf("transcript %s still %s", transcriptID, t.Status)
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.pollInterval
	bo.MaxInterval = 15 * time.Second
	bo.MaxElapsedTime = 0 // bounded by ctx, not wall clock

	if err := backoff.Retry(poll, backoff.WithContext(bo, ctx)); err != nil {
		return aai.Transcript{}, err
	}
	return transcript, nil
}

// mapUtterances flattens the SDK's pointer-heavy utterances into entities,
// converting timestamps from milliseconds to seconds.
func mapUtterances(in []aai.TranscriptUtterance) []entities.Utterance {
	out := make([]entities.Utterance, 0, len(in))
	for _, utt := range in {
		u := entities.Utterance{}
		if utt.Speaker != nil {
			u.Speaker = *utt.Speaker
		}
		if utt.Text != nil {
			u.Text = *utt.Text
		}
		if utt.Start != nil {
			u.StartTime = float64(*utt.Start) / 1000.0
		}
		if utt.End != nil {
			u.EndTime = float64(*utt.End) / 1000.0
		}
		if utt.Confidence != nil {
			u.Confidence = *utt.Confidence
		}
		out = append(out, u)
	}
	return out
}
