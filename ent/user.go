// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rapport-chat/rapport/ent/bot"
	"github.com/rapport-chat/rapport/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BotID holds the value of the "bot_id" field.
	BotID string `json:"bot_id,omitempty"`
	// Caller-supplied user identity, unique per bot
	ExternalID string `json:"external_id,omitempty"`
	// Perceived basics: name, nickname, gender, age_group, location, occupation
	BasicInfo map[string]interface{} `json:"basic_info,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage user.CurrentStage `json:"current_stage,omitempty"`
	// Relationship dimensions in [0,1]: closeness, trust, liking, respect, warmth, power
	Dimensions map[string]float64 `json:"dimensions,omitempty"`
	// Append-only inferred facts about the user
	InferredProfile map[string]string `json:"inferred_profile,omitempty"`
	// Shared history artifacts (jokes, promises, references)
	Assets map[string]interface{} `json:"assets,omitempty"`
	// Social penetration: depth, breadth, depth_trend, recent_signals
	SptInfo map[string]interface{} `json:"spt_info,omitempty"`
	// Rolling summary maintained by the memory stage
	ConversationSummary string `json:"conversation_summary,omitempty"`
	// UrgentTasks holds the value of the "urgent_tasks" field.
	UrgentTasks []interface{} `json:"urgent_tasks,omitempty"`
	// Session task pool plus backlog, capped at persist
	TaskList []interface{} `json:"task_list,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Bot holds the value of the bot edge.
	Bot *Bot `json:"bot,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Transcripts holds the value of the transcripts edge.
	Transcripts []*Transcript `json:"transcripts,omitempty"`
	// DerivedNotes holds the value of the derived_notes edge.
	DerivedNotes []*DerivedNote `json:"derived_notes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// BotOrErr returns the Bot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) BotOrErr() (*Bot, error) {
	if e.Bot != nil {
		return e.Bot, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bot.Label}
	}
	return nil, &NotLoadedError{edge: "bot"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// TranscriptsOrErr returns the Transcripts value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) TranscriptsOrErr() ([]*Transcript, error) {
	if e.loadedTypes[2] {
		return e.Transcripts, nil
	}
	return nil, &NotLoadedError{edge: "transcripts"}
}

// DerivedNotesOrErr returns the DerivedNotes value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) DerivedNotesOrErr() ([]*DerivedNote, error) {
	if e.loadedTypes[3] {
		return e.DerivedNotes, nil
	}
	return nil, &NotLoadedError{edge: "derived_notes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldBasicInfo, user.FieldDimensions, user.FieldInferredProfile, user.FieldAssets, user.FieldSptInfo, user.FieldUrgentTasks, user.FieldTaskList:
			values[i] = new([]byte)
		case user.FieldID, user.FieldBotID, user.FieldExternalID, user.FieldCurrentStage, user.FieldConversationSummary:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt, user.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldBotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_id", values[i])
			} else if value.Valid {
				_m.BotID = value.String
			}
		case user.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case user.FieldBasicInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field basic_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BasicInfo); err != nil {
					return fmt.Errorf("unmarshal field basic_info: %w", err)
				}
			}
		case user.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = user.CurrentStage(value.String)
			}
		case user.FieldDimensions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dimensions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dimensions); err != nil {
					return fmt.Errorf("unmarshal field dimensions: %w", err)
				}
			}
		case user.FieldInferredProfile:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inferred_profile", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InferredProfile); err != nil {
					return fmt.Errorf("unmarshal field inferred_profile: %w", err)
				}
			}
		case user.FieldAssets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Assets); err != nil {
					return fmt.Errorf("unmarshal field assets: %w", err)
				}
			}
		case user.FieldSptInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field spt_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SptInfo); err != nil {
					return fmt.Errorf("unmarshal field spt_info: %w", err)
				}
			}
		case user.FieldConversationSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_summary", values[i])
			} else if value.Valid {
				_m.ConversationSummary = value.String
			}
		case user.FieldUrgentTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field urgent_tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UrgentTasks); err != nil {
					return fmt.Errorf("unmarshal field urgent_tasks: %w", err)
				}
			}
		case user.FieldTaskList:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field task_list", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TaskList); err != nil {
					return fmt.Errorf("unmarshal field task_list: %w", err)
				}
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBot queries the "bot" edge of the User entity.
func (_m *User) QueryBot() *BotQuery {
	return NewUserClient(_m.config).QueryBot(_m)
}

// QueryMessages queries the "messages" edge of the User entity.
func (_m *User) QueryMessages() *MessageQuery {
	return NewUserClient(_m.config).QueryMessages(_m)
}

// QueryTranscripts queries the "transcripts" edge of the User entity.
func (_m *User) QueryTranscripts() *TranscriptQuery {
	return NewUserClient(_m.config).QueryTranscripts(_m)
}

// QueryDerivedNotes queries the "derived_notes" edge of the User entity.
func (_m *User) QueryDerivedNotes() *DerivedNoteQuery {
	return NewUserClient(_m.config).QueryDerivedNotes(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bot_id=")
	builder.WriteString(_m.BotID)
	builder.WriteString(", ")
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("basic_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.BasicInfo))
	builder.WriteString(", ")
	builder.WriteString("current_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStage))
	builder.WriteString(", ")
	builder.WriteString("dimensions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dimensions))
	builder.WriteString(", ")
	builder.WriteString("inferred_profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.InferredProfile))
	builder.WriteString(", ")
	builder.WriteString("assets=")
	builder.WriteString(fmt.Sprintf("%v", _m.Assets))
	builder.WriteString(", ")
	builder.WriteString("spt_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.SptInfo))
	builder.WriteString(", ")
	builder.WriteString("conversation_summary=")
	builder.WriteString(_m.ConversationSummary)
	builder.WriteString(", ")
	builder.WriteString("urgent_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.UrgentTasks))
	builder.WriteString(", ")
	builder.WriteString("task_list=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskList))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
