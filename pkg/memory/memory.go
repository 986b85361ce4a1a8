// Package memory ranks stored history for prompt injection and parses the
// post-turn extraction that feeds it. Pure functions — the database side
// lives in pkg/services.
package memory

import (
	"sort"
	"strings"
	"unicode"

	"github.com/rapport-chat/rapport/pkg/models"
)

// Candidate is one retrievable record: a derived note or a transcript
// short-context, already flattened to text.
type Candidate struct {
	Content    string
	Entities   []string
	Importance float64
	Recency    float64 // 0..1, newer is higher
}

// Rank scores candidates against the user input and returns the topK as
// memory items, best first. Score is keyword overlap weighted by stored
// importance with a small recency bonus; zero-overlap candidates never
// surface regardless of importance.
func Rank(input string, candidates []Candidate, topK int) []models.MemoryItem {
	if topK <= 0 || len(candidates) == 0 {
		return nil
	}
	queryGrams := bigrams(input)
	if len(queryGrams) == 0 {
		return nil
	}

	type scored struct {
		idx   int
		score float64
	}
	var hits []scored
	for i, c := range candidates {
		overlap := overlapScore(queryGrams, c)
		if overlap == 0 {
			continue
		}
		imp := c.Importance
		if imp <= 0 {
			imp = 0.5
		}
		hits = append(hits, scored{idx: i, score: overlap * imp * (1 + 0.2*c.Recency)})
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

	if len(hits) > topK {
		hits = hits[:topK]
	}
	out := make([]models.MemoryItem, 0, len(hits))
	for _, h := range hits {
		c := candidates[h.idx]
		out = append(out, models.MemoryItem{Content: c.Content, Importance: c.Importance})
	}
	return out
}

// overlapScore is the fraction of query bigrams found in the candidate text
// or its entity list. Entity hits count double — a named entity match is a
// far stronger signal than incidental character overlap.
func overlapScore(queryGrams map[string]bool, c Candidate) float64 {
	text := strings.ToLower(c.Content)
	entityText := strings.ToLower(strings.Join(c.Entities, " "))
	hit := 0.0
	for g := range queryGrams {
		switch {
		case entityText != "" && strings.Contains(entityText, g):
			hit += 2
		case strings.Contains(text, g):
			hit++
		}
	}
	return hit / float64(len(queryGrams))
}

// bigrams tokenizes mixed CJK/latin text: CJK runs shred into character
// bigrams, latin runs into lowercase words. Single CJK characters are too
// common to be useful and are skipped unless the run is length one.
func bigrams(s string) map[string]bool {
	out := make(map[string]bool)
	var cjk []rune
	var word []rune
	flushCJK := func() {
		if len(cjk) == 1 {
			out[string(cjk)] = true
		}
		for i := 0; i+1 < len(cjk); i++ {
			out[string(cjk[i:i+2])] = true
		}
		cjk = cjk[:0]
	}
	flushWord := func() {
		if len(word) >= 2 {
			out[strings.ToLower(string(word))] = true
		}
		word = word[:0]
	}
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Han, r):
			flushWord()
			cjk = append(cjk, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushCJK()
			word = append(word, r)
		default:
			flushCJK()
			flushWord()
		}
	}
	flushCJK()
	flushWord()
	return out
}
