package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/meeting-lens-team/meeting-lens/internal/domain/entities"
)

// Parser handles parsing and validation of language model responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseAnalysis parses the model's text response into an Analysis. The text
// must be a JSON object matching the Analysis shape; the prompt forbids
// surrounding prose, but markdown code fences are tolerated since models
// add them anyway. No repair or re-prompting happens on failure.
func (p *Parser) ParseAnalysis(raw string) (*entities.Analysis, error) {
	raw = extractJSON(raw)

	var result entities.Analysis
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON object")
	}

	if err := p.validateShape(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// validateShape checks the parsed object field by field instead of trusting
// the external service unconditionally.
func (p *Parser) validateShape(result *entities.Analysis) error {
	if result.Summary == "" {
		return fmt.Errorf("missing summary in response")
	}

	for i, d := range result.SpeakerDominance {
		if d.Speaker == "" {
			return fmt.Errorf("speaker_dominance[%d]: missing speaker", i)
		}
		if d.Percentage < 0 || d.Percentage > 100 {
			return fmt.Errorf("speaker_dominance[%d]: percentage %v out of range", i, d.Percentage)
		}
	}

	for i, s := range result.KeySentiments {
		switch s.Sentiment {
		case entities.SentimentPositive, entities.SentimentNegative, entities.SentimentNeutral:
		default:
			return fmt.Errorf("key_sentiments[%d]: unknown sentiment %q", i, s.Sentiment)
		}
		if s.Speaker == "" {
			return fmt.Errorf("key_sentiments[%d]: missing speaker", i)
		}
	}

	for i, intr := range result.Interruptions {
		if intr.Interrupter == "" || intr.Interrupted == "" {
			return fmt.Errorf("interruptions[%d]: missing speaker labels", i)
		}
	}

	for i, item := range result.ActionItems {
		if item.Task == "" {
			return fmt.Errorf("action_items[%d]: missing task", i)
		}
	}

	// Lists may legitimately be empty; just make sure they are initialized
	// so the wire shape stays stable.
	if result.SpeakerDominance == nil {
		result.SpeakerDominance = make([]entities.SpeakerDominance, 0)
	}
	if result.KeySentiments == nil {
		result.KeySentiments = make([]entities.KeySentiment, 0)
	}
	if result.Interruptions == nil {
		result.Interruptions = make([]entities.Interruption, 0)
	}
	if result.ActionItems == nil {
		result.ActionItems = make([]entities.ActionItem, 0)
	}

	return nil
}

// DominanceDrift returns how far the dominance percentages stray from 100.
// The sum-to-100 invariant belongs to the external model; callers log the
// drift instead of rejecting the response.
func (p *Parser) DominanceDrift(result *entities.Analysis) float64 {
	if result == nil || len(result.SpeakerDominance) == 0 {
		return 0
	}
	var sum float64
	for _, d := range result.SpeakerDominance {
		sum += d.Percentage
	}
	return math.Abs(sum - 100)
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
