// Code generated by ent, DO NOT EDIT.

package derivednote

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the derivednote type in the database.
	Label = "derived_note"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "note_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTranscriptID holds the string denoting the transcript_id field in the database.
	FieldTranscriptID = "transcript_id"
	// FieldNoteType holds the string denoting the note_type field in the database.
	FieldNoteType = "note_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldImportance holds the string denoting the importance field in the database.
	FieldImportance = "importance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeTranscript holds the string denoting the transcript edge name in mutations.
	EdgeTranscript = "transcript"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// Table holds the table name of the derivednote in the database.
	Table = "derived_notes"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "derived_notes"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// TranscriptTable is the table that holds the transcript relation/edge.
	TranscriptTable = "derived_notes"
	// TranscriptInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptInverseTable = "transcripts"
	// TranscriptColumn is the table column denoting the transcript relation/edge.
	TranscriptColumn = "transcript_id"
)

// Columns holds all SQL columns for derivednote fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTranscriptID,
	FieldNoteType,
	FieldContent,
	FieldImportance,
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

// NoteType defines the type for the "note_type" enum field.
type NoteType string

// NoteTypeOther is the default value of the NoteType enum.
const DefaultNoteType = NoteTypeOther

// NoteType values.
const (
	NoteTypeFact       NoteType = "fact"
	NoteTypePreference NoteType = "preference"
	NoteTypeActivity   NoteType = "activity"
	NoteTypeDecision   NoteType = "decision"
	NoteTypeOther      NoteType = "other"
)

func (nt NoteType) String() string {
	return string(nt)
}

// NoteTypeValidator is a validator for the "note_type" field enum values. It is called by the builders before save.
func NoteTypeValidator(nt NoteType) error {
	switch nt {
	case NoteTypeFact, NoteTypePreference, NoteTypeActivity, NoteTypeDecision, NoteTypeOther:
		return nil
	default:
		return fmt.Errorf("derivednote: invalid enum value for note_type field: %q", nt)
	}
}

// OrderOption defines the ordering options for the DerivedNote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTranscriptID orders the results by the transcript_id field.
func ByTranscriptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptID, opts...).ToFunc()
}

// ByNoteType orders the results by the note_type field.
func ByNoteType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoteType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByImportance orders the results by the importance field.
func ByImportance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportance, opts...).ToFunc()
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

// ByTranscriptField orders the results by transcript field.
func ByTranscriptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newTranscriptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptInverseTable, TranscriptFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TranscriptTable, TranscriptColumn),
	)
}
