// Package segment turns a chosen reply plan into deliverable message
// bubbles: rule-based splitting of long text, per-bubble send delays, the
// macro-delay decision and the final shape validator.
package segment

import (
	"math"
	"strings"

	"github.com/rapport-chat/rapport/pkg/models"
)

// Rune lengths that bound the rule splitter.
const (
	thresholdMin = 5
	thresholdMax = 60
)

// sentence-final punctuation that may end a bubble. Half-width variants
// appear in model output often enough to matter.
var sentenceEnders = map[rune]bool{
	'。': true, '！': true, '？': true, '!': true, '?': true,
}

// soft boundaries where an over-threshold buffer may break without a
// sentence ender.
var softBreaks = map[rune]bool{
	'，': true, '、': true, ',': true, '；': true, ';': true, ' ': true,
}

// FragmentationTendency maps personality and state onto a [0,1] tendency to
// send many short bubbles. Inputs are the raw stored values, not
// unit-normalized ones.
func FragmentationTendency(extraversion, closeness, arousal float64) float64 {
	return models.Clamp01(0.4*extraversion + 0.4*closeness + 0.2*arousal)
}

// SplitThreshold converts the tendency into the rune count at which the
// splitter starts looking for a break. High tendency means short bubbles.
func SplitThreshold(tendency float64) int {
	return models.ClampInt(int(math.Round(45-40*tendency)), thresholdMin, thresholdMax)
}

// RuleSplit breaks one long reply string into bubbles. Newlines always
// break. Sentence enders break with the ender attached to the left side. A
// buffer that reaches the threshold breaks at the next soft boundary. After
// splitting, bubbles shorter than minBubbleLength merge forward into their
// successor; a short final bubble merges backward. If nothing survives on
// its own, the whole trimmed string is returned as a single bubble.
func RuleSplit(text string, threshold, minBubbleLength int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if threshold < thresholdMin {
		threshold = thresholdMin
	}

	var raw []string
	var buf []rune
	flush := func() {
		s := strings.TrimSpace(string(buf))
		if s != "" {
			raw = append(raw, s)
		}
		buf = buf[:0]
	}
	for _, r := range text {
		if r == '\n' {
			flush()
			continue
		}
		buf = append(buf, r)
		if sentenceEnders[r] {
			flush()
			continue
		}
		if len(buf) >= threshold && softBreaks[r] {
			flush()
		}
	}
	flush()

	if len(raw) == 0 {
		return nil
	}

	// Merge-forward pass for undersized bubbles.
	var out []string
	carry := ""
	for _, s := range raw {
		s = carry + s
		carry = ""
		if len([]rune(s)) < minBubbleLength {
			carry = s
			continue
		}
		out = append(out, s)
	}
	if carry != "" {
		if len(out) > 0 {
			out[len(out)-1] += carry
		} else {
			out = append(out, carry)
		}
	}
	return out
}
