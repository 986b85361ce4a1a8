package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Raw chat history; the tail window feeds the next turn's chat buffer and the
// cleanup service prunes everything beyond the retention window.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("role").
			Values("user", "ai", "system"),
		field.Text("content").
			Comment("Full-text searchable"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Turn id, segment layout, absorbed errors"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("messages").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Buffer load and retention pruning both scan this
		index.Fields("user_id", "created_at"),
		index.Fields("role"),
	}
}
