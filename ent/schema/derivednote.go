package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DerivedNote holds the schema definition for the DerivedNote entity.
// Durable facts extracted from transcripts by the memory stage. Append-only;
// each note keeps a pointer to the transcript it came from.
type DerivedNote struct {
	ent.Schema
}

// Fields of the DerivedNote.
func (DerivedNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("note_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("transcript_id").
			Optional().
			Immutable(),
		field.Enum("note_type").
			Values("fact", "preference", "activity", "decision", "other").
			Default("other"),
		field.Text("content"),
		field.Float("importance").
			Default(0).
			Comment("In [0,1], weighs retrieval"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DerivedNote.
func (DerivedNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("derived_notes").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("transcript", Transcript.Type).
			Ref("notes").
			Field("transcript_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the DerivedNote.
func (DerivedNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "note_type"),
	}
}
