// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/transcript"
	"github.com/rapport-chat/rapport/ent/user"
)

// DerivedNote is the model entity for the DerivedNote schema.
type DerivedNote struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TranscriptID holds the value of the "transcript_id" field.
	TranscriptID string `json:"transcript_id,omitempty"`
	// NoteType holds the value of the "note_type" field.
	NoteType derivednote.NoteType `json:"note_type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// In [0,1], weighs retrieval
	Importance float64 `json:"importance,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DerivedNoteQuery when eager-loading is set.
	Edges        DerivedNoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DerivedNoteEdges holds the relations/edges for other nodes in the graph.
type DerivedNoteEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Transcript holds the value of the transcript edge.
	Transcript *Transcript `json:"transcript,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DerivedNoteEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// TranscriptOrErr returns the Transcript value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DerivedNoteEdges) TranscriptOrErr() (*Transcript, error) {
	if e.Transcript != nil {
		return e.Transcript, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: transcript.Label}
	}
	return nil, &NotLoadedError{edge: "transcript"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DerivedNote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case derivednote.FieldImportance:
			values[i] = new(sql.NullFloat64)
		case derivednote.FieldID, derivednote.FieldUserID, derivednote.FieldTranscriptID, derivednote.FieldNoteType, derivednote.FieldContent:
			values[i] = new(sql.NullString)
		case derivednote.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DerivedNote fields.
func (_m *DerivedNote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case derivednote.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case derivednote.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case derivednote.FieldTranscriptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_id", values[i])
			} else if value.Valid {
				_m.TranscriptID = value.String
			}
		case derivednote.FieldNoteType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note_type", values[i])
			} else if value.Valid {
				_m.NoteType = derivednote.NoteType(value.String)
			}
		case derivednote.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case derivednote.FieldImportance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field importance", values[i])
			} else if value.Valid {
				_m.Importance = value.Float64
			}
		case derivednote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DerivedNote.
// This includes values selected through modifiers, order, etc.
func (_m *DerivedNote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the DerivedNote entity.
func (_m *DerivedNote) QueryUser() *UserQuery {
	return NewDerivedNoteClient(_m.config).QueryUser(_m)
}

// QueryTranscript queries the "transcript" edge of the DerivedNote entity.
func (_m *DerivedNote) QueryTranscript() *TranscriptQuery {
	return NewDerivedNoteClient(_m.config).QueryTranscript(_m)
}

// Update returns a builder for updating this DerivedNote.
// Note that you need to call DerivedNote.Unwrap() before calling this method if this DerivedNote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DerivedNote) Update() *DerivedNoteUpdateOne {
	return NewDerivedNoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DerivedNote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DerivedNote) Unwrap() *DerivedNote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DerivedNote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DerivedNote) String() string {
	var builder strings.Builder
	builder.WriteString("DerivedNote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("transcript_id=")
	builder.WriteString(_m.TranscriptID)
	builder.WriteString(", ")
	builder.WriteString("note_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.NoteType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("importance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Importance))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DerivedNotes is a parsable slice of DerivedNote.
type DerivedNotes []*DerivedNote
