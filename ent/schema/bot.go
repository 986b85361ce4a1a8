package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Bot holds the schema definition for the Bot entity.
// Bots are created out-of-band; the static identity layers are read-only at
// runtime while mood_state and urgent_tasks are mutated by the turn pipeline.
type Bot struct {
	ent.Schema
}

// Fields of the Bot.
func (Bot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bot_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.JSON("basic_info", map[string]interface{}{}).
			Comment("Identity layer: name, gender, age, region, occupation, education, native_language, speaking_style"),
		field.JSON("big_five", map[string]float64{}).
			Comment("Five personality dimensions in [-1,1]"),
		field.JSON("persona", map[string]interface{}{}).
			Optional().
			Comment("Attributes, collections and lore entries"),
		field.JSON("mood_state", map[string]interface{}{}).
			Optional().
			Comment("PAD mood plus busyness; row-locked at persist"),
		field.JSON("urgent_tasks", []interface{}{}).
			Optional().
			Comment("Operator-injected tasks, consumed by the next turn"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Bot.
func (Bot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Bot.
func (Bot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
