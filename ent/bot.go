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
)

// Bot is the model entity for the Bot schema.
type Bot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Identity layer: name, gender, age, region, occupation, education, native_language, speaking_style
	BasicInfo map[string]interface{} `json:"basic_info,omitempty"`
	// Five personality dimensions in [-1,1]
	BigFive map[string]float64 `json:"big_five,omitempty"`
	// Attributes, collections and lore entries
	Persona map[string]interface{} `json:"persona,omitempty"`
	// PAD mood plus busyness; row-locked at persist
	MoodState map[string]interface{} `json:"mood_state,omitempty"`
	// Operator-injected tasks, consumed by the next turn
	UrgentTasks []interface{} `json:"urgent_tasks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BotQuery when eager-loading is set.
	Edges        BotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BotEdges holds the relations/edges for other nodes in the graph.
type BotEdges struct {
	// Users holds the value of the users edge.
	Users []*User `json:"users,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e BotEdges) UsersOrErr() ([]*User, error) {
	if e.loadedTypes[0] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bot.FieldBasicInfo, bot.FieldBigFive, bot.FieldPersona, bot.FieldMoodState, bot.FieldUrgentTasks:
			values[i] = new([]byte)
		case bot.FieldID, bot.FieldName:
			values[i] = new(sql.NullString)
		case bot.FieldCreatedAt, bot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bot fields.
func (_m *Bot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case bot.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case bot.FieldBasicInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field basic_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BasicInfo); err != nil {
					return fmt.Errorf("unmarshal field basic_info: %w", err)
				}
			}
		case bot.FieldBigFive:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field big_five", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BigFive); err != nil {
					return fmt.Errorf("unmarshal field big_five: %w", err)
				}
			}
		case bot.FieldPersona:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field persona", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Persona); err != nil {
					return fmt.Errorf("unmarshal field persona: %w", err)
				}
			}
		case bot.FieldMoodState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mood_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MoodState); err != nil {
					return fmt.Errorf("unmarshal field mood_state: %w", err)
				}
			}
		case bot.FieldUrgentTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field urgent_tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UrgentTasks); err != nil {
					return fmt.Errorf("unmarshal field urgent_tasks: %w", err)
				}
			}
		case bot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bot.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Bot.
// This includes values selected through modifiers, order, etc.
func (_m *Bot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsers queries the "users" edge of the Bot entity.
func (_m *Bot) QueryUsers() *UserQuery {
	return NewBotClient(_m.config).QueryUsers(_m)
}

// Update returns a builder for updating this Bot.
// Note that you need to call Bot.Unwrap() before calling this method if this Bot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bot) Update() *BotUpdateOne {
	return NewBotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bot) Unwrap() *Bot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Bot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bot) String() string {
	var builder strings.Builder
	builder.WriteString("Bot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("basic_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.BasicInfo))
	builder.WriteString(", ")
	builder.WriteString("big_five=")
	builder.WriteString(fmt.Sprintf("%v", _m.BigFive))
	builder.WriteString(", ")
	builder.WriteString("persona=")
	builder.WriteString(fmt.Sprintf("%v", _m.Persona))
	builder.WriteString(", ")
	builder.WriteString("mood_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.MoodState))
	builder.WriteString(", ")
	builder.WriteString("urgent_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.UrgentTasks))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Bots is a parsable slice of Bot.
type Bots []*Bot
