package invoker

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ParseBestEffort extracts the JSON document from a model completion.
//
// Completions arrive in three shapes: bare JSON, JSON inside a fenced code
// block, and JSON surrounded by prose. Fences are stripped first, then the
// text is sliced from the outermost opening brace or bracket to its matching
// closer. The result is checked with json.Valid, never unmarshaled here.
func ParseBestEffort(content string) (json.RawMessage, error) {
	text := stripFences(strings.TrimSpace(content))

	if json.Valid([]byte(text)) {
		return json.RawMessage(text), nil
	}

	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(text, pair[0])
		end := strings.LastIndexByte(text, pair[1])
		if start == -1 || end <= start {
			continue
		}
		candidate := text[start : end+1]
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoJSON, truncateForLog(content, 120))
}

// stripFences removes a leading ```json (or bare ```) fence and its closer.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	body := text[3:]
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		// The fence line may carry a language tag.
		body = body[nl+1:]
	}
	if end := strings.LastIndex(body, "```"); end != -1 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// validateAgainstSchema checks a parsed document against a JSON Schema.
func validateAgainstSchema(doc json.RawMessage, schemaBytes json.RawMessage) error {
	var schemaDoc any
	if err := json.Unmarshal(schemaBytes, &schemaDoc); err != nil {
		return fmt.Errorf("unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var instance any
	if err := json.Unmarshal(doc, &instance); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return nil
}

func truncateForLog(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
