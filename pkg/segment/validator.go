package segment

import (
	"strings"

	"github.com/rapport-chat/rapport/pkg/models"
)

// Apology is the static last-resort reply when validation leaves nothing
// deliverable.
const Apology = "抱歉，我刚才走神了。"

// Validator enforces the deliverable shape of a segment list.
type Validator struct {
	MaxMessages   int
	MinFirstLen   int
	MaxMessageLen int
}

// Validate returns a segment list that satisfies the delivery contract:
// at most MaxMessages bubbles (overflow merges into the last allowed one),
// a first bubble of at least MinFirstLen runes (else the first two merge),
// every bubble non-empty and within MaxMessageLen. The first bubble always
// ships immediately, merged or not. An empty result degrades to the apology
// bubble.
func (v Validator) Validate(segments []models.Segment) []models.Segment {
	out := make([]models.Segment, 0, len(segments))
	for _, s := range segments {
		s.Content = strings.TrimSpace(s.Content)
		if s.Content == "" {
			continue
		}
		if runes := []rune(s.Content); v.MaxMessageLen > 0 && len(runes) > v.MaxMessageLen {
			s.Content = string(runes[:v.MaxMessageLen])
		}
		out = append(out, s)
	}

	if v.MaxMessages > 0 && len(out) > v.MaxMessages {
		last := v.MaxMessages - 1
		var tail []string
		for _, s := range out[last:] {
			tail = append(tail, s.Content)
		}
		out[last].Content = strings.Join(tail, "")
		out = out[:v.MaxMessages]
	}

	if len(out) >= 2 && len([]rune(out[0].Content)) < v.MinFirstLen {
		merged := out[0]
		merged.Content += out[1].Content
		// The merged bubble is still the first one; it sends immediately.
		merged.DelaySeconds = 0
		merged.Action = models.ActionIdle
		out = append([]models.Segment{merged}, out[2:]...)
	}

	if len(out) == 0 {
		return []models.Segment{{Content: Apology, Action: models.ActionIdle}}
	}
	return out
}
