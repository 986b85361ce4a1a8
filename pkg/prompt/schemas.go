package prompt

import "encoding/json"

// Response schemas for the structured calls. The invoker extracts a JSON
// document from the completion and, when configured, validates it against
// these before the stage sees it. Only shape is pinned here — value-range
// clamping stays in the stage code, which has to survive unvalidated
// responses anyway.

var SecuritySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"is_injection_attempt": {"type": "boolean"},
		"is_ai_test": {"type": "boolean"},
		"is_user_treating_as_assistant": {"type": "boolean"},
		"reasoning": {"type": "string"}
	},
	"required": ["is_injection_attempt", "is_ai_test", "is_user_treating_as_assistant"]
}`)

var SecurityReplySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"strategy": {"type": "string"},
		"reply": {"type": "string"}
	},
	"required": ["strategy", "reply"]
}`)

var DetectionSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"scores": {
			"type": "object",
			"properties": {
				"friendly": {"type": "number"},
				"hostile": {"type": "number"},
				"overstep": {"type": "number"},
				"low_effort": {"type": "number"},
				"confusion": {"type": "number"}
			},
			"required": ["friendly", "hostile", "overstep", "low_effort", "confusion"]
		},
		"meta": {"type": "object"},
		"brief": {
			"type": "object",
			"properties": {
				"gist": {"type": "string"}
			},
			"required": ["gist"]
		},
		"stage_judge": {"type": "object"},
		"immediate_tasks": {"type": "array"}
	},
	"required": ["scores", "brief"]
}`)

var MonologueSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"monologue": {"type": "string"},
		"selected_profile_keys": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["monologue"]
}`)

var TaskPlanSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"word_budget": {"type": "integer"},
		"task_budget_max": {"type": "integer"},
		"top2_indices": {"type": "array", "items": {"type": "integer"}},
		"random_index": {"type": "integer"}
	},
	"required": ["word_budget", "task_budget_max"]
}`)

var planSchemaBody = `{
	"type": "object",
	"properties": {
		"thought": {"type": "string"},
		"messages": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"content": {"type": "string"},
					"delay_seconds": {"type": "number"}
				},
				"required": ["content"]
			}
		},
		"attempted_task_ids": {"type": "array", "items": {"type": "string"}},
		"completed_task_ids": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["messages"]
}`

var PlanSchema = json.RawMessage(planSchemaBody)

var ExpandSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"variants": {"type": "array", "items": ` + planSchemaBody + `}
	},
	"required": ["variants"]
}`)

var BatchGateSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"verdicts": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"idx": {"type": "integer"},
					"assistantiness_ok": {"type": "boolean"},
					"identity_ok": {"type": "boolean"},
					"immersion_ok": {"type": "boolean"}
				},
				"required": ["idx", "assistantiness_ok", "identity_ok", "immersion_ok"]
			}
		}
	},
	"required": ["verdicts"]
}`)

var SoftScoreSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"assistantiness": {"type": "number"},
		"immersion_break": {"type": "number"},
		"persona_consistency": {"type": "number"},
		"relationship_fit": {"type": "number"},
		"mode_behavior_fit": {"type": "number"},
		"overall_score": {"type": "number"}
	},
	"required": ["assistantiness", "immersion_break", "overall_score"]
}`)

var ProcessorSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"messages": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"content": {"type": "string"},
					"delay_seconds": {"type": "number"}
				},
				"required": ["content"]
			}
		}
	},
	"required": ["messages"]
}`)

var EvolveSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"thought_process": {"type": "string"},
		"detected_signals": {"type": "array", "items": {"type": "string"}},
		"deltas": {"type": "object"},
		"basic_info_updates": {"type": "object"},
		"new_inferred_entries": {"type": "object"}
	},
	"required": ["deltas"]
}`)

var MemorySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"new_summary": {"type": "string"},
		"transcript_meta": {
			"type": "object",
			"properties": {
				"entities": {"type": "array", "items": {"type": "string"}},
				"topic": {"type": "string"},
				"importance": {"type": "number"},
				"short_context": {"type": "string"}
			},
			"required": ["topic"]
		},
		"notes": {"type": "array"},
		"spt": {"type": "object"}
	},
	"required": ["new_summary", "transcript_meta"]
}`)
