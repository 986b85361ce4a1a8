package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// One row per (bot, external user); created lazily on the first turn.
// JSON columns are replaced whole-value at persist, never patched in place.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("bot_id").
			Immutable(),
		field.String("external_id").
			Immutable().
			Comment("Caller-supplied user identity, unique per bot"),
		field.JSON("basic_info", map[string]interface{}{}).
			Optional().
			Comment("Perceived basics: name, nickname, gender, age_group, location, occupation"),
		field.Enum("current_stage").
			Values("initiating", "experimenting", "intensifying", "integrating", "bonding",
				"differentiating", "circumscribing", "stagnating", "avoiding", "terminating").
			Default("initiating"),
		field.JSON("dimensions", map[string]float64{}).
			Optional().
			Comment("Relationship dimensions in [0,1]: closeness, trust, liking, respect, warmth, power"),
		field.JSON("inferred_profile", map[string]string{}).
			Optional().
			Comment("Append-only inferred facts about the user"),
		field.JSON("assets", map[string]interface{}{}).
			Optional().
			Comment("Shared history artifacts (jokes, promises, references)"),
		field.JSON("spt_info", map[string]interface{}{}).
			Optional().
			Comment("Social penetration: depth, breadth, depth_trend, recent_signals"),
		field.Text("conversation_summary").
			Optional().
			Comment("Rolling summary maintained by the memory stage"),
		field.JSON("urgent_tasks", []interface{}{}).
			Optional(),
		field.JSON("task_list", []interface{}{}).
			Optional().
			Comment("Session task pool plus backlog, capped at persist"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bot", Bot.Type).
			Ref("users").
			Field("bot_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("transcripts", Transcript.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("derived_notes", DerivedNote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Load path: one lookup per turn
		index.Fields("bot_id", "external_id").
			Unique(),
		index.Fields("current_stage"),
	}
}
