// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transcript type in the database.
	Label = "transcript"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "transcript_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTurnIndex holds the string denoting the turn_index field in the database.
	FieldTurnIndex = "turn_index"
	// FieldUserText holds the string denoting the user_text field in the database.
	FieldUserText = "user_text"
	// FieldBotText holds the string denoting the bot_text field in the database.
	FieldBotText = "bot_text"
	// FieldEntities holds the string denoting the entities field in the database.
	FieldEntities = "entities"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldImportance holds the string denoting the importance field in the database.
	FieldImportance = "importance"
	// FieldShortContext holds the string denoting the short_context field in the database.
	FieldShortContext = "short_context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeNotes holds the string denoting the notes edge name in mutations.
	EdgeNotes = "notes"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// DerivedNoteFieldID holds the string denoting the ID field of the DerivedNote.
	DerivedNoteFieldID = "note_id"
	// Table holds the table name of the transcript in the database.
	Table = "transcripts"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "transcripts"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// NotesTable is the table that holds the notes relation/edge.
	NotesTable = "derived_notes"
	// NotesInverseTable is the table name for the DerivedNote entity.
	// It exists in this package in order to avoid circular dependency with the "derivednote" package.
	NotesInverseTable = "derived_notes"
	// NotesColumn is the table column denoting the notes relation/edge.
	NotesColumn = "transcript_id"
)

// Columns holds all SQL columns for transcript fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTurnIndex,
	FieldUserText,
	FieldBotText,
	FieldEntities,
	FieldTopic,
	FieldImportance,
	FieldShortContext,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultImportance holds the default value on creation for the "importance" field.
	DefaultImportance float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Transcript queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTurnIndex orders the results by the turn_index field.
func ByTurnIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnIndex, opts...).ToFunc()
}

// ByUserText orders the results by the user_text field.
func ByUserText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserText, opts...).ToFunc()
}

// ByBotText orders the results by the bot_text field.
func ByBotText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotText, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByImportance orders the results by the importance field.
func ByImportance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportance, opts...).ToFunc()
}

// ByShortContext orders the results by the short_context field.
func ByShortContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortContext, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByNotesCount orders the results by notes count.
func ByNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotesStep(), opts...)
	}
}

// ByNotes orders the results by notes terms.
func ByNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotesInverseTable, DerivedNoteFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
	)
}
