package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Transcript holds the schema definition for the Transcript entity.
// One condensed exchange per committed turn, written by the memory stage.
// Append-only.
type Transcript struct {
	ent.Schema
}

// Fields of the Transcript.
func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcript_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Int("turn_index").
			Comment("Monotonic per user"),
		field.Text("user_text"),
		field.Text("bot_text"),
		field.JSON("entities", []string{}).
			Optional(),
		field.String("topic").
			Optional(),
		field.Float("importance").
			Default(0).
			Comment("In [0,1], weighs retrieval"),
		field.String("short_context").
			Optional().
			Comment("At most ~40 chars, used as retrieval preview"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Transcript.
func (Transcript) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("transcripts").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("notes", DerivedNote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Transcript.
func (Transcript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "turn_index"),
	}
}
