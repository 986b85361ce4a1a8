package invoker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBestEffort(t *testing.T) {
	t.Run("bare JSON object", func(t *testing.T) {
		doc, err := ParseBestEffort(`{"messages": ["hi"]}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"messages": ["hi"]}`, string(doc))
	})

	t.Run("fenced with language tag", func(t *testing.T) {
		doc, err := ParseBestEffort("```json\n{\"ok\": true}\n```")
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok": true}`, string(doc))
	})

	t.Run("fenced without language tag", func(t *testing.T) {
		doc, err := ParseBestEffort("```\n[1, 2, 3]\n```")
		require.NoError(t, err)
		assert.JSONEq(t, `[1, 2, 3]`, string(doc))
	})

	t.Run("prose around object", func(t *testing.T) {
		doc, err := ParseBestEffort(`Here is the result: {"score": 0.8} hope it helps`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"score": 0.8}`, string(doc))
	})

	t.Run("prose around array", func(t *testing.T) {
		doc, err := ParseBestEffort(`The tasks are ["a", "b"].`)
		require.NoError(t, err)
		assert.JSONEq(t, `["a", "b"]`, string(doc))
	})

	t.Run("nested braces survive slicing", func(t *testing.T) {
		doc, err := ParseBestEffort(`result: {"outer": {"inner": 1}}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"outer": {"inner": 1}}`, string(doc))
	})

	t.Run("no JSON at all", func(t *testing.T) {
		_, err := ParseBestEffort("I could not produce a structured answer.")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("unbalanced braces", func(t *testing.T) {
		_, err := ParseBestEffort(`{"broken": `)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoJSON)
	})
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

func TestValidateAgainstSchema(t *testing.T) {
	schema := json.RawMessage(`{
		"type": "object",
		"properties": {
			"messages": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["messages"]
	}`)

	t.Run("valid document", func(t *testing.T) {
		err := validateAgainstSchema(json.RawMessage(`{"messages": ["hello"]}`), schema)
		assert.NoError(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		err := validateAgainstSchema(json.RawMessage(`{"other": 1}`), schema)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("wrong item type", func(t *testing.T) {
		err := validateAgainstSchema(json.RawMessage(`{"messages": [42]}`), schema)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})
}
