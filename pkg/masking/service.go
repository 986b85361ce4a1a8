package masking

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Service applies PII masking to text bound for logs. Created once at
// startup; thread-safe and stateless aside from compiled patterns.
type Service struct {
	patterns    []*CompiledPattern
	codeMaskers []Masker
}

// NewService creates a masking service with compiled patterns and the
// registered code maskers.
func NewService(logger *slog.Logger) *Service {
	s := &Service{
		patterns:    compilePatterns(logger),
		codeMaskers: []Masker{&jsonFieldMasker{}},
	}
	logger.Info("masking service initialized",
		"patterns", len(s.patterns), "code_maskers", len(s.codeMaskers))
	return s
}

// Mask redacts PII from the text. Code maskers run first for structural
// cases, then the regex sweep.
func (s *Service) Mask(text string) string {
	if text == "" {
		return text
	}
	masked := text
	for _, m := range s.codeMaskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// Preview masks the text and truncates it to maxRunes for compact log lines.
func (s *Service) Preview(text string, maxRunes int) string {
	masked := s.Mask(text)
	runes := []rune(masked)
	if maxRunes > 0 && len(runes) > maxRunes {
		return string(runes[:maxRunes]) + "…"
	}
	return masked
}

// sensitiveKeys are JSON keys whose values are always redacted wholesale.
var sensitiveKeys = map[string]bool{
	"phone":     true,
	"mobile":    true,
	"email":     true,
	"id_card":   true,
	"id_number": true,
	"address":   true,
	"password":  true,
}

// jsonFieldMasker redacts values of sensitive keys inside JSON documents.
// Regexes cannot tell a phone field from a turn counter; key names can.
type jsonFieldMasker struct{}

func (m *jsonFieldMasker) Name() string { return "json_field" }

func (m *jsonFieldMasker) AppliesTo(data string) bool {
	trimmed := strings.TrimSpace(data)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

func (m *jsonFieldMasker) Mask(data string) string {
	var doc any
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return data
	}
	redacted := redactValue(doc)
	out, err := json.Marshal(redacted)
	if err != nil {
		return data
	}
	return string(out)
}

func redactValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if sensitiveKeys[strings.ToLower(k)] {
				t[k] = "[已隐藏]"
				continue
			}
			t[k] = redactValue(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = redactValue(val)
		}
		return t
	default:
		return v
	}
}
