package analysis

import (
	"regexp"

	"github.com/meeting-lens-team/meeting-lens/internal/domain/entities"
)

// RenameSpeakers returns a copy of the analysis with every speaker label
// replaced by its chosen display name in the fields that denote a speaker:
// speaker, interrupter, interrupted and assigned_to. Free-text fields
// (summary, quote, context, task, due_date) are never touched. The input
// analysis is not mutated.
//
// Labels match as whole tokens only, so a label that is a substring of a
// longer word is left alone. Labels are regexp-escaped before the pattern is
// built, so names containing metacharacters are safe. A label mapped to
// itself (or absent from the map) is a no-op, and disjoint-label renames are
// order independent. If a chosen name collides with another original label
// the outcome depends on map iteration order; that case is deliberately
// unspecified.
func RenameSpeakers(a *entities.Analysis, names map[string]string) *entities.Analysis {
	out := a.Clone()
	if out == nil || len(names) == 0 {
		return out
	}

	patterns := make(map[*regexp.Regexp]string, len(names))
	for label, name := range names {
		if label == "" || name == "" || label == name {
			continue
		}
		patterns[regexp.MustCompile(labelPattern(label))] = name
	}
	if len(patterns) == 0 {
		return out
	}

	substitute := func(s string) string {
		for re, name := range patterns {
			s = re.ReplaceAllString(s, name)
		}
		return s
	}

	for i := range out.SpeakerDominance {
		out.SpeakerDominance[i].Speaker = substitute(out.SpeakerDominance[i].Speaker)
	}
	for i := range out.KeySentiments {
		out.KeySentiments[i].Speaker = substitute(out.KeySentiments[i].Speaker)
	}
	for i := range out.Interruptions {
		out.Interruptions[i].Interrupter = substitute(out.Interruptions[i].Interrupter)
		out.Interruptions[i].Interrupted = substitute(out.Interruptions[i].Interrupted)
	}
	for i := range out.ActionItems {
		out.ActionItems[i].AssignedTo = substitute(out.ActionItems[i].AssignedTo)
	}
	return out
}

// labelPattern builds a whole-token pattern for a speaker label. \b only
// anchors against a word character, so it is added per edge; a label that
// starts or ends with a non-word character (like a parenthesis) anchors on
// that character instead.
func labelPattern(label string) string {
	pat := regexp.QuoteMeta(label)
	if isWordByte(label[0]) {
		pat = `\b` + pat
	}
	if isWordByte(label[len(label)-1]) {
		pat = pat + `\b`
	}
	return pat
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
