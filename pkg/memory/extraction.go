package memory

import (
	"encoding/json"
	"strings"

	"github.com/rapport-chat/rapport/pkg/models"
)

// Summary length bounds in runes. Outside them the model either dropped
// history or started narrating; both are worse than keeping the old summary.
const (
	summaryMinLen = 20
	summaryMaxLen = 300
	maxNotes      = 5
	shortCtxMax   = 40
)

// TranscriptMeta is the per-turn index record written alongside the raw
// exchange.
type TranscriptMeta struct {
	Entities     []string `json:"entities,omitempty"`
	Topic        string   `json:"topic"`
	Importance   float64  `json:"importance"`
	ShortContext string   `json:"short_context"`
}

// Note is one long-lived extracted fact.
type Note struct {
	NoteType   string  `json:"note_type"`
	Content    string  `json:"content"`
	Importance float64 `json:"importance"`
}

// SPTDelta is the social-penetration movement observed this turn.
type SPTDelta struct {
	DepthDelta int      `json:"depth_delta"`
	NewTopic   bool     `json:"new_topic"`
	Signals    []string `json:"signals,omitempty"`
}

// Extraction is the parsed post-turn memory update.
type Extraction struct {
	NewSummary     string         `json:"new_summary"`
	TranscriptMeta TranscriptMeta `json:"transcript_meta"`
	Notes          []Note         `json:"notes,omitempty"`
	SPT            SPTDelta       `json:"spt"`
}

var validNoteTypes = map[string]bool{
	"fact": true, "preference": true, "activity": true, "decision": true, "other": true,
}

// ParseExtraction interprets the extraction response defensively. A summary
// outside its length bounds is replaced by priorSummary, notes are capped
// and unknown note types coerced to "other". An unparseable payload returns
// a minimal extraction that keeps the prior summary, so a bad model response
// never erases history.
func ParseExtraction(raw []byte, priorSummary string) Extraction {
	var ext Extraction
	if err := json.Unmarshal(raw, &ext); err != nil {
		return Extraction{
			NewSummary:     priorSummary,
			TranscriptMeta: TranscriptMeta{Topic: "chat", Importance: 0.3},
		}
	}

	ext.NewSummary = strings.TrimSpace(ext.NewSummary)
	if n := len([]rune(ext.NewSummary)); n < summaryMinLen || n > summaryMaxLen {
		ext.NewSummary = priorSummary
	}

	if strings.TrimSpace(ext.TranscriptMeta.Topic) == "" {
		ext.TranscriptMeta.Topic = "chat"
	}
	ext.TranscriptMeta.Importance = models.Clamp01(ext.TranscriptMeta.Importance)
	if ext.TranscriptMeta.Importance == 0 {
		ext.TranscriptMeta.Importance = 0.3
	}
	if runes := []rune(ext.TranscriptMeta.ShortContext); len(runes) > shortCtxMax {
		ext.TranscriptMeta.ShortContext = string(runes[:shortCtxMax])
	}

	kept := make([]Note, 0, len(ext.Notes))
	for _, n := range ext.Notes {
		if len(kept) == maxNotes {
			break
		}
		n.Content = strings.TrimSpace(n.Content)
		if n.Content == "" {
			continue
		}
		if !validNoteTypes[n.NoteType] {
			n.NoteType = "other"
		}
		n.Importance = models.Clamp01(n.Importance)
		if n.Importance == 0 {
			n.Importance = 0.5
		}
		kept = append(kept, n)
	}
	ext.Notes = kept

	ext.SPT.DepthDelta = models.ClampInt(ext.SPT.DepthDelta, -1, 1)
	return ext
}

// ApplySPT folds the observed delta into the stored social-penetration info.
func ApplySPT(spt models.SPTInfo, d SPTDelta) models.SPTInfo {
	spt.Depth = models.ClampInt(spt.Depth+d.DepthDelta, 0, 5)
	if d.NewTopic {
		spt.Breadth++
	}
	switch {
	case d.DepthDelta > 0:
		spt.DepthTrend = "increasing"
	case d.DepthDelta < 0:
		spt.DepthTrend = "decreasing"
	default:
		spt.DepthTrend = "stable"
	}
	if len(d.Signals) > 0 {
		spt.RecentSignals = append(spt.RecentSignals, d.Signals...)
		if len(spt.RecentSignals) > 20 {
			spt.RecentSignals = spt.RecentSignals[len(spt.RecentSignals)-20:]
		}
	}
	return spt
}
