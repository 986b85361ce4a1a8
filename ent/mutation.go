// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rapport-chat/rapport/ent/bot"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/message"
	"github.com/rapport-chat/rapport/ent/predicate"
	"github.com/rapport-chat/rapport/ent/transcript"
	"github.com/rapport-chat/rapport/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBot         = "Bot"
	TypeDerivedNote = "DerivedNote"
	TypeMessage     = "Message"
	TypeTranscript  = "Transcript"
	TypeUser        = "User"
)

// BotMutation represents an operation that mutates the Bot nodes in the graph.
type BotMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	basic_info         *map[string]interface{}
	big_five           *map[string]float64
	persona            *map[string]interface{}
	mood_state         *map[string]interface{}
	urgent_tasks       *[]interface{}
	appendurgent_tasks []interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	users              map[string]struct{}
	removedusers       map[string]struct{}
	clearedusers       bool
	done               bool
	oldValue           func(context.Context) (*Bot, error)
	predicates         []predicate.Bot
}

var _ ent.Mutation = (*BotMutation)(nil)

// botOption allows management of the mutation configuration using functional options.
type botOption func(*BotMutation)

// newBotMutation creates new mutation for the Bot entity.
func newBotMutation(c config, op Op, opts ...botOption) *BotMutation {
	m := &BotMutation{
		config:        c,
		op:            op,
		typ:           TypeBot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotID sets the ID field of the mutation.
func withBotID(id string) botOption {
	return func(m *BotMutation) {
		var (
			err   error
			once  sync.Once
			value *Bot
		)
		m.oldValue = func(ctx context.Context) (*Bot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBot sets the old Bot of the mutation.
func withBot(node *Bot) botOption {
	return func(m *BotMutation) {
		m.oldValue = func(context.Context) (*Bot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bot entities.
func (m *BotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BotMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BotMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BotMutation) ResetName() {
	m.name = nil
}

// SetBasicInfo sets the "basic_info" field.
func (m *BotMutation) SetBasicInfo(value map[string]interface{}) {
	m.basic_info = &value
}

// BasicInfo returns the value of the "basic_info" field in the mutation.
func (m *BotMutation) BasicInfo() (r map[string]interface{}, exists bool) {
	v := m.basic_info
	if v == nil {
		return
	}
	return *v, true
}

// OldBasicInfo returns the old "basic_info" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldBasicInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBasicInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBasicInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBasicInfo: %w", err)
	}
	return oldValue.BasicInfo, nil
}

// ResetBasicInfo resets all changes to the "basic_info" field.
func (m *BotMutation) ResetBasicInfo() {
	m.basic_info = nil
}

// SetBigFive sets the "big_five" field.
func (m *BotMutation) SetBigFive(value map[string]float64) {
	m.big_five = &value
}

// BigFive returns the value of the "big_five" field in the mutation.
func (m *BotMutation) BigFive() (r map[string]float64, exists bool) {
	v := m.big_five
	if v == nil {
		return
	}
	return *v, true
}

// OldBigFive returns the old "big_five" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldBigFive(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBigFive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBigFive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBigFive: %w", err)
	}
	return oldValue.BigFive, nil
}

// ResetBigFive resets all changes to the "big_five" field.
func (m *BotMutation) ResetBigFive() {
	m.big_five = nil
}

// SetPersona sets the "persona" field.
func (m *BotMutation) SetPersona(value map[string]interface{}) {
	m.persona = &value
}

// Persona returns the value of the "persona" field in the mutation.
func (m *BotMutation) Persona() (r map[string]interface{}, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldPersona(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ClearPersona clears the value of the "persona" field.
func (m *BotMutation) ClearPersona() {
	m.persona = nil
	m.clearedFields[bot.FieldPersona] = struct{}{}
}

// PersonaCleared returns if the "persona" field was cleared in this mutation.
func (m *BotMutation) PersonaCleared() bool {
	_, ok := m.clearedFields[bot.FieldPersona]
	return ok
}

// ResetPersona resets all changes to the "persona" field.
func (m *BotMutation) ResetPersona() {
	m.persona = nil
	delete(m.clearedFields, bot.FieldPersona)
}

// SetMoodState sets the "mood_state" field.
func (m *BotMutation) SetMoodState(value map[string]interface{}) {
	m.mood_state = &value
}

// MoodState returns the value of the "mood_state" field in the mutation.
func (m *BotMutation) MoodState() (r map[string]interface{}, exists bool) {
	v := m.mood_state
	if v == nil {
		return
	}
	return *v, true
}

// OldMoodState returns the old "mood_state" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldMoodState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoodState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoodState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoodState: %w", err)
	}
	return oldValue.MoodState, nil
}

// ClearMoodState clears the value of the "mood_state" field.
func (m *BotMutation) ClearMoodState() {
	m.mood_state = nil
	m.clearedFields[bot.FieldMoodState] = struct{}{}
}

// MoodStateCleared returns if the "mood_state" field was cleared in this mutation.
func (m *BotMutation) MoodStateCleared() bool {
	_, ok := m.clearedFields[bot.FieldMoodState]
	return ok
}

// ResetMoodState resets all changes to the "mood_state" field.
func (m *BotMutation) ResetMoodState() {
	m.mood_state = nil
	delete(m.clearedFields, bot.FieldMoodState)
}

// SetUrgentTasks sets the "urgent_tasks" field.
func (m *BotMutation) SetUrgentTasks(i []interface{}) {
	m.urgent_tasks = &i
	m.appendurgent_tasks = nil
}

// UrgentTasks returns the value of the "urgent_tasks" field in the mutation.
func (m *BotMutation) UrgentTasks() (r []interface{}, exists bool) {
	v := m.urgent_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgentTasks returns the old "urgent_tasks" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldUrgentTasks(ctx context.Context) (v []interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgentTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgentTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgentTasks: %w", err)
	}
	return oldValue.UrgentTasks, nil
}

// AppendUrgentTasks adds i to the "urgent_tasks" field.
func (m *BotMutation) AppendUrgentTasks(i []interface{}) {
	m.appendurgent_tasks = append(m.appendurgent_tasks, i...)
}

// AppendedUrgentTasks returns the list of values that were appended to the "urgent_tasks" field in this mutation.
func (m *BotMutation) AppendedUrgentTasks() ([]interface{}, bool) {
	if len(m.appendurgent_tasks) == 0 {
		return nil, false
	}
	return m.appendurgent_tasks, true
}

// ClearUrgentTasks clears the value of the "urgent_tasks" field.
func (m *BotMutation) ClearUrgentTasks() {
	m.urgent_tasks = nil
	m.appendurgent_tasks = nil
	m.clearedFields[bot.FieldUrgentTasks] = struct{}{}
}

// UrgentTasksCleared returns if the "urgent_tasks" field was cleared in this mutation.
func (m *BotMutation) UrgentTasksCleared() bool {
	_, ok := m.clearedFields[bot.FieldUrgentTasks]
	return ok
}

// ResetUrgentTasks resets all changes to the "urgent_tasks" field.
func (m *BotMutation) ResetUrgentTasks() {
	m.urgent_tasks = nil
	m.appendurgent_tasks = nil
	delete(m.clearedFields, bot.FieldUrgentTasks)
}

// SetCreatedAt sets the "created_at" field.
func (m *BotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *BotMutation) AddUserIDs(ids ...string) {
	if m.users == nil {
		m.users = make(map[string]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *BotMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *BotMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *BotMutation) RemoveUserIDs(ids ...string) {
	if m.removedusers == nil {
		m.removedusers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *BotMutation) RemovedUsersIDs() (ids []string) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *BotMutation) UsersIDs() (ids []string) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *BotMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// Where appends a list predicates to the BotMutation builder.
func (m *BotMutation) Where(ps ...predicate.Bot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bot).
func (m *BotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, bot.FieldName)
	}
	if m.basic_info != nil {
		fields = append(fields, bot.FieldBasicInfo)
	}
	if m.big_five != nil {
		fields = append(fields, bot.FieldBigFive)
	}
	if m.persona != nil {
		fields = append(fields, bot.FieldPersona)
	}
	if m.mood_state != nil {
		fields = append(fields, bot.FieldMoodState)
	}
	if m.urgent_tasks != nil {
		fields = append(fields, bot.FieldUrgentTasks)
	}
	if m.created_at != nil {
		fields = append(fields, bot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bot.FieldName:
		return m.Name()
	case bot.FieldBasicInfo:
		return m.BasicInfo()
	case bot.FieldBigFive:
		return m.BigFive()
	case bot.FieldPersona:
		return m.Persona()
	case bot.FieldMoodState:
		return m.MoodState()
	case bot.FieldUrgentTasks:
		return m.UrgentTasks()
	case bot.FieldCreatedAt:
		return m.CreatedAt()
	case bot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bot.FieldName:
		return m.OldName(ctx)
	case bot.FieldBasicInfo:
		return m.OldBasicInfo(ctx)
	case bot.FieldBigFive:
		return m.OldBigFive(ctx)
	case bot.FieldPersona:
		return m.OldPersona(ctx)
	case bot.FieldMoodState:
		return m.OldMoodState(ctx)
	case bot.FieldUrgentTasks:
		return m.OldUrgentTasks(ctx)
	case bot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Bot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bot.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case bot.FieldBasicInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBasicInfo(v)
		return nil
	case bot.FieldBigFive:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBigFive(v)
		return nil
	case bot.FieldPersona:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case bot.FieldMoodState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoodState(v)
		return nil
	case bot.FieldUrgentTasks:
		v, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgentTasks(v)
		return nil
	case bot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Bot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Bot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bot.FieldPersona) {
		fields = append(fields, bot.FieldPersona)
	}
	if m.FieldCleared(bot.FieldMoodState) {
		fields = append(fields, bot.FieldMoodState)
	}
	if m.FieldCleared(bot.FieldUrgentTasks) {
		fields = append(fields, bot.FieldUrgentTasks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotMutation) ClearField(name string) error {
	switch name {
	case bot.FieldPersona:
		m.ClearPersona()
		return nil
	case bot.FieldMoodState:
		m.ClearMoodState()
		return nil
	case bot.FieldUrgentTasks:
		m.ClearUrgentTasks()
		return nil
	}
	return fmt.Errorf("unknown Bot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotMutation) ResetField(name string) error {
	switch name {
	case bot.FieldName:
		m.ResetName()
		return nil
	case bot.FieldBasicInfo:
		m.ResetBasicInfo()
		return nil
	case bot.FieldBigFive:
		m.ResetBigFive()
		return nil
	case bot.FieldPersona:
		m.ResetPersona()
		return nil
	case bot.FieldMoodState:
		m.ResetMoodState()
		return nil
	case bot.FieldUrgentTasks:
		m.ResetUrgentTasks()
		return nil
	case bot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Bot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.users != nil {
		edges = append(edges, bot.EdgeUsers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bot.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedusers != nil {
		edges = append(edges, bot.EdgeUsers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bot.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedusers {
		edges = append(edges, bot.EdgeUsers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotMutation) EdgeCleared(name string) bool {
	switch name {
	case bot.EdgeUsers:
		return m.clearedusers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Bot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotMutation) ResetEdge(name string) error {
	switch name {
	case bot.EdgeUsers:
		m.ResetUsers()
		return nil
	}
	return fmt.Errorf("unknown Bot edge %s", name)
}

// DerivedNoteMutation represents an operation that mutates the DerivedNote nodes in the graph.
type DerivedNoteMutation struct {
	config
	op                Op
	typ               string
	id                *string
	note_type         *derivednote.NoteType
	content           *string
	importance        *float64
	addimportance     *float64
	created_at        *time.Time
	clearedFields     map[string]struct{}
	user              *string
	cleareduser       bool
	transcript        *string
	clearedtranscript bool
	done              bool
	oldValue          func(context.Context) (*DerivedNote, error)
	predicates        []predicate.DerivedNote
}

var _ ent.Mutation = (*DerivedNoteMutation)(nil)

// derivednoteOption allows management of the mutation configuration using functional options.
type derivednoteOption func(*DerivedNoteMutation)

// newDerivedNoteMutation creates new mutation for the DerivedNote entity.
func newDerivedNoteMutation(c config, op Op, opts ...derivednoteOption) *DerivedNoteMutation {
	m := &DerivedNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeDerivedNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDerivedNoteID sets the ID field of the mutation.
func withDerivedNoteID(id string) derivednoteOption {
	return func(m *DerivedNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *DerivedNote
		)
		m.oldValue = func(ctx context.Context) (*DerivedNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DerivedNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDerivedNote sets the old DerivedNote of the mutation.
func withDerivedNote(node *DerivedNote) derivednoteOption {
	return func(m *DerivedNoteMutation) {
		m.oldValue = func(context.Context) (*DerivedNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DerivedNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DerivedNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DerivedNote entities.
func (m *DerivedNoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DerivedNoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DerivedNoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DerivedNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DerivedNoteMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DerivedNoteMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DerivedNote entity.
// If the DerivedNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DerivedNoteMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DerivedNoteMutation) ResetUserID() {
	m.user = nil
}

// SetTranscriptID sets the "transcript_id" field.
func (m *DerivedNoteMutation) SetTranscriptID(s string) {
	m.transcript = &s
}

// TranscriptID returns the value of the "transcript_id" field in the mutation.
func (m *DerivedNoteMutation) TranscriptID() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptID returns the old "transcript_id" field's value of the DerivedNote entity.
// If the DerivedNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DerivedNoteMutation) OldTranscriptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptID: %w", err)
	}
	return oldValue.TranscriptID, nil
}

// ClearTranscriptID clears the value of the "transcript_id" field.
func (m *DerivedNoteMutation) ClearTranscriptID() {
	m.transcript = nil
	m.clearedFields[derivednote.FieldTranscriptID] = struct{}{}
}

// TranscriptIDCleared returns if the "transcript_id" field was cleared in this mutation.
func (m *DerivedNoteMutation) TranscriptIDCleared() bool {
	_, ok := m.clearedFields[derivednote.FieldTranscriptID]
	return ok
}

// ResetTranscriptID resets all changes to the "transcript_id" field.
func (m *DerivedNoteMutation) ResetTranscriptID() {
	m.transcript = nil
	delete(m.clearedFields, derivednote.FieldTranscriptID)
}

// SetNoteType sets the "note_type" field.
func (m *DerivedNoteMutation) SetNoteType(dt derivednote.NoteType) {
	m.note_type = &dt
}

// NoteType returns the value of the "note_type" field in the mutation.
func (m *DerivedNoteMutation) NoteType() (r derivednote.NoteType, exists bool) {
	v := m.note_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNoteType returns the old "note_type" field's value of the DerivedNote entity.
// If the DerivedNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DerivedNoteMutation) OldNoteType(ctx context.Context) (v derivednote.NoteType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoteType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoteType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoteType: %w", err)
	}
	return oldValue.NoteType, nil
}

// ResetNoteType resets all changes to the "note_type" field.
func (m *DerivedNoteMutation) ResetNoteType() {
	m.note_type = nil
}

// SetContent sets the "content" field.
func (m *DerivedNoteMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DerivedNoteMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DerivedNote entity.
// If the DerivedNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DerivedNoteMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DerivedNoteMutation) ResetContent() {
	m.content = nil
}

// SetImportance sets the "importance" field.
func (m *DerivedNoteMutation) SetImportance(f float64) {
	m.importance = &f
	m.addimportance = nil
}

// Importance returns the value of the "importance" field in the mutation.
func (m *DerivedNoteMutation) Importance() (r float64, exists bool) {
	v := m.importance
	if v == nil {
		return
	}
	return *v, true
}

// OldImportance returns the old "importance" field's value of the DerivedNote entity.
// If the DerivedNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DerivedNoteMutation) OldImportance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportance: %w", err)
	}
	return oldValue.Importance, nil
}

// AddImportance adds f to the "importance" field.
func (m *DerivedNoteMutation) AddImportance(f float64) {
	if m.addimportance != nil {
		*m.addimportance += f
	} else {
		m.addimportance = &f
	}
}

// AddedImportance returns the value that was added to the "importance" field in this mutation.
func (m *DerivedNoteMutation) AddedImportance() (r float64, exists bool) {
	v := m.addimportance
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportance resets all changes to the "importance" field.
func (m *DerivedNoteMutation) ResetImportance() {
	m.importance = nil
	m.addimportance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DerivedNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DerivedNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DerivedNote entity.
// If the DerivedNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DerivedNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DerivedNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *DerivedNoteMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[derivednote.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DerivedNoteMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DerivedNoteMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DerivedNoteMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (m *DerivedNoteMutation) ClearTranscript() {
	m.clearedtranscript = true
	m.clearedFields[derivednote.FieldTranscriptID] = struct{}{}
}

// TranscriptCleared reports if the "transcript" edge to the Transcript entity was cleared.
func (m *DerivedNoteMutation) TranscriptCleared() bool {
	return m.TranscriptIDCleared() || m.clearedtranscript
}

// TranscriptIDs returns the "transcript" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptID instead. It exists only for internal usage by the builders.
func (m *DerivedNoteMutation) TranscriptIDs() (ids []string) {
	if id := m.transcript; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscript resets all changes to the "transcript" edge.
func (m *DerivedNoteMutation) ResetTranscript() {
	m.transcript = nil
	m.clearedtranscript = false
}

// Where appends a list predicates to the DerivedNoteMutation builder.
func (m *DerivedNoteMutation) Where(ps ...predicate.DerivedNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DerivedNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DerivedNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DerivedNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DerivedNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DerivedNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DerivedNote).
func (m *DerivedNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DerivedNoteMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user != nil {
		fields = append(fields, derivednote.FieldUserID)
	}
	if m.transcript != nil {
		fields = append(fields, derivednote.FieldTranscriptID)
	}
	if m.note_type != nil {
		fields = append(fields, derivednote.FieldNoteType)
	}
	if m.content != nil {
		fields = append(fields, derivednote.FieldContent)
	}
	if m.importance != nil {
		fields = append(fields, derivednote.FieldImportance)
	}
	if m.created_at != nil {
		fields = append(fields, derivednote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DerivedNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case derivednote.FieldUserID:
		return m.UserID()
	case derivednote.FieldTranscriptID:
		return m.TranscriptID()
	case derivednote.FieldNoteType:
		return m.NoteType()
	case derivednote.FieldContent:
		return m.Content()
	case derivednote.FieldImportance:
		return m.Importance()
	case derivednote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DerivedNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case derivednote.FieldUserID:
		return m.OldUserID(ctx)
	case derivednote.FieldTranscriptID:
		return m.OldTranscriptID(ctx)
	case derivednote.FieldNoteType:
		return m.OldNoteType(ctx)
	case derivednote.FieldContent:
		return m.OldContent(ctx)
	case derivednote.FieldImportance:
		return m.OldImportance(ctx)
	case derivednote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DerivedNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DerivedNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case derivednote.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case derivednote.FieldTranscriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptID(v)
		return nil
	case derivednote.FieldNoteType:
		v, ok := value.(derivednote.NoteType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoteType(v)
		return nil
	case derivednote.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case derivednote.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportance(v)
		return nil
	case derivednote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DerivedNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DerivedNoteMutation) AddedFields() []string {
	var fields []string
	if m.addimportance != nil {
		fields = append(fields, derivednote.FieldImportance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DerivedNoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case derivednote.FieldImportance:
		return m.AddedImportance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DerivedNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case derivednote.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportance(v)
		return nil
	}
	return fmt.Errorf("unknown DerivedNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DerivedNoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(derivednote.FieldTranscriptID) {
		fields = append(fields, derivednote.FieldTranscriptID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DerivedNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DerivedNoteMutation) ClearField(name string) error {
	switch name {
	case derivednote.FieldTranscriptID:
		m.ClearTranscriptID()
		return nil
	}
	return fmt.Errorf("unknown DerivedNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DerivedNoteMutation) ResetField(name string) error {
	switch name {
	case derivednote.FieldUserID:
		m.ResetUserID()
		return nil
	case derivednote.FieldTranscriptID:
		m.ResetTranscriptID()
		return nil
	case derivednote.FieldNoteType:
		m.ResetNoteType()
		return nil
	case derivednote.FieldContent:
		m.ResetContent()
		return nil
	case derivednote.FieldImportance:
		m.ResetImportance()
		return nil
	case derivednote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DerivedNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DerivedNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, derivednote.EdgeUser)
	}
	if m.transcript != nil {
		edges = append(edges, derivednote.EdgeTranscript)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DerivedNoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case derivednote.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case derivednote.EdgeTranscript:
		if id := m.transcript; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DerivedNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DerivedNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DerivedNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, derivednote.EdgeUser)
	}
	if m.clearedtranscript {
		edges = append(edges, derivednote.EdgeTranscript)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DerivedNoteMutation) EdgeCleared(name string) bool {
	switch name {
	case derivednote.EdgeUser:
		return m.cleareduser
	case derivednote.EdgeTranscript:
		return m.clearedtranscript
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DerivedNoteMutation) ClearEdge(name string) error {
	switch name {
	case derivednote.EdgeUser:
		m.ClearUser()
		return nil
	case derivednote.EdgeTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown DerivedNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DerivedNoteMutation) ResetEdge(name string) error {
	switch name {
	case derivednote.EdgeUser:
		m.ResetUser()
		return nil
	case derivednote.EdgeTranscript:
		m.ResetTranscript()
		return nil
	}
	return fmt.Errorf("unknown DerivedNote edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	role          *message.Role
	content       *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Message, error)
	predicates    []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MessageMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MessageMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MessageMutation) ResetUserID() {
	m.user = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *MessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[message.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[message.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, message.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *MessageMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[message.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *MessageMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *MessageMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user != nil {
		fields = append(fields, message.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, message.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldUserID:
		return m.UserID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldMetadata:
		return m.Metadata()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldUserID:
		return m.OldUserID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldMetadata:
		return m.OldMetadata(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldMetadata) {
		fields = append(fields, message.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldUserID:
		m.ResetUserID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldMetadata:
		m.ResetMetadata()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, message.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, message.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// TranscriptMutation represents an operation that mutates the Transcript nodes in the graph.
type TranscriptMutation struct {
	config
	op             Op
	typ            string
	id             *string
	turn_index     *int
	addturn_index  *int
	user_text      *string
	bot_text       *string
	entities       *[]string
	appendentities []string
	topic          *string
	importance     *float64
	addimportance  *float64
	short_context  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	user           *string
	cleareduser    bool
	notes          map[string]struct{}
	removednotes   map[string]struct{}
	clearednotes   bool
	done           bool
	oldValue       func(context.Context) (*Transcript, error)
	predicates     []predicate.Transcript
}

var _ ent.Mutation = (*TranscriptMutation)(nil)

// transcriptOption allows management of the mutation configuration using functional options.
type transcriptOption func(*TranscriptMutation)

// newTranscriptMutation creates new mutation for the Transcript entity.
func newTranscriptMutation(c config, op Op, opts ...transcriptOption) *TranscriptMutation {
	m := &TranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptID sets the ID field of the mutation.
func withTranscriptID(id string) transcriptOption {
	return func(m *TranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcript
		)
		m.oldValue = func(ctx context.Context) (*Transcript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscript sets the old Transcript of the mutation.
func withTranscript(node *Transcript) transcriptOption {
	return func(m *TranscriptMutation) {
		m.oldValue = func(context.Context) (*Transcript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transcript entities.
func (m *TranscriptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TranscriptMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TranscriptMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TranscriptMutation) ResetUserID() {
	m.user = nil
}

// SetTurnIndex sets the "turn_index" field.
func (m *TranscriptMutation) SetTurnIndex(i int) {
	m.turn_index = &i
	m.addturn_index = nil
}

// TurnIndex returns the value of the "turn_index" field in the mutation.
func (m *TranscriptMutation) TurnIndex() (r int, exists bool) {
	v := m.turn_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnIndex returns the old "turn_index" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTurnIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnIndex: %w", err)
	}
	return oldValue.TurnIndex, nil
}

// AddTurnIndex adds i to the "turn_index" field.
func (m *TranscriptMutation) AddTurnIndex(i int) {
	if m.addturn_index != nil {
		*m.addturn_index += i
	} else {
		m.addturn_index = &i
	}
}

// AddedTurnIndex returns the value that was added to the "turn_index" field in this mutation.
func (m *TranscriptMutation) AddedTurnIndex() (r int, exists bool) {
	v := m.addturn_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnIndex resets all changes to the "turn_index" field.
func (m *TranscriptMutation) ResetTurnIndex() {
	m.turn_index = nil
	m.addturn_index = nil
}

// SetUserText sets the "user_text" field.
func (m *TranscriptMutation) SetUserText(s string) {
	m.user_text = &s
}

// UserText returns the value of the "user_text" field in the mutation.
func (m *TranscriptMutation) UserText() (r string, exists bool) {
	v := m.user_text
	if v == nil {
		return
	}
	return *v, true
}

// OldUserText returns the old "user_text" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldUserText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserText: %w", err)
	}
	return oldValue.UserText, nil
}

// ResetUserText resets all changes to the "user_text" field.
func (m *TranscriptMutation) ResetUserText() {
	m.user_text = nil
}

// SetBotText sets the "bot_text" field.
func (m *TranscriptMutation) SetBotText(s string) {
	m.bot_text = &s
}

// BotText returns the value of the "bot_text" field in the mutation.
func (m *TranscriptMutation) BotText() (r string, exists bool) {
	v := m.bot_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBotText returns the old "bot_text" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldBotText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotText: %w", err)
	}
	return oldValue.BotText, nil
}

// ResetBotText resets all changes to the "bot_text" field.
func (m *TranscriptMutation) ResetBotText() {
	m.bot_text = nil
}

// SetEntities sets the "entities" field.
func (m *TranscriptMutation) SetEntities(s []string) {
	m.entities = &s
	m.appendentities = nil
}

// Entities returns the value of the "entities" field in the mutation.
func (m *TranscriptMutation) Entities() (r []string, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldEntities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// AppendEntities adds s to the "entities" field.
func (m *TranscriptMutation) AppendEntities(s []string) {
	m.appendentities = append(m.appendentities, s...)
}

// AppendedEntities returns the list of values that were appended to the "entities" field in this mutation.
func (m *TranscriptMutation) AppendedEntities() ([]string, bool) {
	if len(m.appendentities) == 0 {
		return nil, false
	}
	return m.appendentities, true
}

// ClearEntities clears the value of the "entities" field.
func (m *TranscriptMutation) ClearEntities() {
	m.entities = nil
	m.appendentities = nil
	m.clearedFields[transcript.FieldEntities] = struct{}{}
}

// EntitiesCleared returns if the "entities" field was cleared in this mutation.
func (m *TranscriptMutation) EntitiesCleared() bool {
	_, ok := m.clearedFields[transcript.FieldEntities]
	return ok
}

// ResetEntities resets all changes to the "entities" field.
func (m *TranscriptMutation) ResetEntities() {
	m.entities = nil
	m.appendentities = nil
	delete(m.clearedFields, transcript.FieldEntities)
}

// SetTopic sets the "topic" field.
func (m *TranscriptMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *TranscriptMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *TranscriptMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[transcript.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *TranscriptMutation) TopicCleared() bool {
	_, ok := m.clearedFields[transcript.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *TranscriptMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, transcript.FieldTopic)
}

// SetImportance sets the "importance" field.
func (m *TranscriptMutation) SetImportance(f float64) {
	m.importance = &f
	m.addimportance = nil
}

// Importance returns the value of the "importance" field in the mutation.
func (m *TranscriptMutation) Importance() (r float64, exists bool) {
	v := m.importance
	if v == nil {
		return
	}
	return *v, true
}

// OldImportance returns the old "importance" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldImportance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportance: %w", err)
	}
	return oldValue.Importance, nil
}

// AddImportance adds f to the "importance" field.
func (m *TranscriptMutation) AddImportance(f float64) {
	if m.addimportance != nil {
		*m.addimportance += f
	} else {
		m.addimportance = &f
	}
}

// AddedImportance returns the value that was added to the "importance" field in this mutation.
func (m *TranscriptMutation) AddedImportance() (r float64, exists bool) {
	v := m.addimportance
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportance resets all changes to the "importance" field.
func (m *TranscriptMutation) ResetImportance() {
	m.importance = nil
	m.addimportance = nil
}

// SetShortContext sets the "short_context" field.
func (m *TranscriptMutation) SetShortContext(s string) {
	m.short_context = &s
}

// ShortContext returns the value of the "short_context" field in the mutation.
func (m *TranscriptMutation) ShortContext() (r string, exists bool) {
	v := m.short_context
	if v == nil {
		return
	}
	return *v, true
}

// OldShortContext returns the old "short_context" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldShortContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortContext: %w", err)
	}
	return oldValue.ShortContext, nil
}

// ClearShortContext clears the value of the "short_context" field.
func (m *TranscriptMutation) ClearShortContext() {
	m.short_context = nil
	m.clearedFields[transcript.FieldShortContext] = struct{}{}
}

// ShortContextCleared returns if the "short_context" field was cleared in this mutation.
func (m *TranscriptMutation) ShortContextCleared() bool {
	_, ok := m.clearedFields[transcript.FieldShortContext]
	return ok
}

// ResetShortContext resets all changes to the "short_context" field.
func (m *TranscriptMutation) ResetShortContext() {
	m.short_context = nil
	delete(m.clearedFields, transcript.FieldShortContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *TranscriptMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[transcript.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *TranscriptMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *TranscriptMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *TranscriptMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddNoteIDs adds the "notes" edge to the DerivedNote entity by ids.
func (m *TranscriptMutation) AddNoteIDs(ids ...string) {
	if m.notes == nil {
		m.notes = make(map[string]struct{})
	}
	for i := range ids {
		m.notes[ids[i]] = struct{}{}
	}
}

// ClearNotes clears the "notes" edge to the DerivedNote entity.
func (m *TranscriptMutation) ClearNotes() {
	m.clearednotes = true
}

// NotesCleared reports if the "notes" edge to the DerivedNote entity was cleared.
func (m *TranscriptMutation) NotesCleared() bool {
	return m.clearednotes
}

// RemoveNoteIDs removes the "notes" edge to the DerivedNote entity by IDs.
func (m *TranscriptMutation) RemoveNoteIDs(ids ...string) {
	if m.removednotes == nil {
		m.removednotes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notes, ids[i])
		m.removednotes[ids[i]] = struct{}{}
	}
}

// RemovedNotes returns the removed IDs of the "notes" edge to the DerivedNote entity.
func (m *TranscriptMutation) RemovedNotesIDs() (ids []string) {
	for id := range m.removednotes {
		ids = append(ids, id)
	}
	return
}

// NotesIDs returns the "notes" edge IDs in the mutation.
func (m *TranscriptMutation) NotesIDs() (ids []string) {
	for id := range m.notes {
		ids = append(ids, id)
	}
	return
}

// ResetNotes resets all changes to the "notes" edge.
func (m *TranscriptMutation) ResetNotes() {
	m.notes = nil
	m.clearednotes = false
	m.removednotes = nil
}

// Where appends a list predicates to the TranscriptMutation builder.
func (m *TranscriptMutation) Where(ps ...predicate.Transcript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcript).
func (m *TranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, transcript.FieldUserID)
	}
	if m.turn_index != nil {
		fields = append(fields, transcript.FieldTurnIndex)
	}
	if m.user_text != nil {
		fields = append(fields, transcript.FieldUserText)
	}
	if m.bot_text != nil {
		fields = append(fields, transcript.FieldBotText)
	}
	if m.entities != nil {
		fields = append(fields, transcript.FieldEntities)
	}
	if m.topic != nil {
		fields = append(fields, transcript.FieldTopic)
	}
	if m.importance != nil {
		fields = append(fields, transcript.FieldImportance)
	}
	if m.short_context != nil {
		fields = append(fields, transcript.FieldShortContext)
	}
	if m.created_at != nil {
		fields = append(fields, transcript.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldUserID:
		return m.UserID()
	case transcript.FieldTurnIndex:
		return m.TurnIndex()
	case transcript.FieldUserText:
		return m.UserText()
	case transcript.FieldBotText:
		return m.BotText()
	case transcript.FieldEntities:
		return m.Entities()
	case transcript.FieldTopic:
		return m.Topic()
	case transcript.FieldImportance:
		return m.Importance()
	case transcript.FieldShortContext:
		return m.ShortContext()
	case transcript.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcript.FieldUserID:
		return m.OldUserID(ctx)
	case transcript.FieldTurnIndex:
		return m.OldTurnIndex(ctx)
	case transcript.FieldUserText:
		return m.OldUserText(ctx)
	case transcript.FieldBotText:
		return m.OldBotText(ctx)
	case transcript.FieldEntities:
		return m.OldEntities(ctx)
	case transcript.FieldTopic:
		return m.OldTopic(ctx)
	case transcript.FieldImportance:
		return m.OldImportance(ctx)
	case transcript.FieldShortContext:
		return m.OldShortContext(ctx)
	case transcript.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case transcript.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnIndex(v)
		return nil
	case transcript.FieldUserText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserText(v)
		return nil
	case transcript.FieldBotText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotText(v)
		return nil
	case transcript.FieldEntities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case transcript.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case transcript.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportance(v)
		return nil
	case transcript.FieldShortContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortContext(v)
		return nil
	case transcript.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptMutation) AddedFields() []string {
	var fields []string
	if m.addturn_index != nil {
		fields = append(fields, transcript.FieldTurnIndex)
	}
	if m.addimportance != nil {
		fields = append(fields, transcript.FieldImportance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldTurnIndex:
		return m.AddedTurnIndex()
	case transcript.FieldImportance:
		return m.AddedImportance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnIndex(v)
		return nil
	case transcript.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportance(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcript.FieldEntities) {
		fields = append(fields, transcript.FieldEntities)
	}
	if m.FieldCleared(transcript.FieldTopic) {
		fields = append(fields, transcript.FieldTopic)
	}
	if m.FieldCleared(transcript.FieldShortContext) {
		fields = append(fields, transcript.FieldShortContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptMutation) ClearField(name string) error {
	switch name {
	case transcript.FieldEntities:
		m.ClearEntities()
		return nil
	case transcript.FieldTopic:
		m.ClearTopic()
		return nil
	case transcript.FieldShortContext:
		m.ClearShortContext()
		return nil
	}
	return fmt.Errorf("unknown Transcript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptMutation) ResetField(name string) error {
	switch name {
	case transcript.FieldUserID:
		m.ResetUserID()
		return nil
	case transcript.FieldTurnIndex:
		m.ResetTurnIndex()
		return nil
	case transcript.FieldUserText:
		m.ResetUserText()
		return nil
	case transcript.FieldBotText:
		m.ResetBotText()
		return nil
	case transcript.FieldEntities:
		m.ResetEntities()
		return nil
	case transcript.FieldTopic:
		m.ResetTopic()
		return nil
	case transcript.FieldImportance:
		m.ResetImportance()
		return nil
	case transcript.FieldShortContext:
		m.ResetShortContext()
		return nil
	case transcript.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, transcript.EdgeUser)
	}
	if m.notes != nil {
		edges = append(edges, transcript.EdgeNotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcript.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case transcript.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.notes))
		for id := range m.notes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removednotes != nil {
		edges = append(edges, transcript.EdgeNotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transcript.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.removednotes))
		for id := range m.removednotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, transcript.EdgeUser)
	}
	if m.clearednotes {
		edges = append(edges, transcript.EdgeNotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptMutation) EdgeCleared(name string) bool {
	switch name {
	case transcript.EdgeUser:
		return m.cleareduser
	case transcript.EdgeNotes:
		return m.clearednotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptMutation) ClearEdge(name string) error {
	switch name {
	case transcript.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Transcript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptMutation) ResetEdge(name string) error {
	switch name {
	case transcript.EdgeUser:
		m.ResetUser()
		return nil
	case transcript.EdgeNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Transcript edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	external_id          *string
	basic_info           *map[string]interface{}
	current_stage        *user.CurrentStage
	dimensions           *map[string]float64
	inferred_profile     *map[string]string
	assets               *map[string]interface{}
	spt_info             *map[string]interface{}
	conversation_summary *string
	urgent_tasks         *[]interface{}
	appendurgent_tasks   []interface{}
	task_list            *[]interface{}
	appendtask_list      []interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	bot                  *string
	clearedbot           bool
	messages             map[string]struct{}
	removedmessages      map[string]struct{}
	clearedmessages      bool
	transcripts          map[string]struct{}
	removedtranscripts   map[string]struct{}
	clearedtranscripts   bool
	derived_notes        map[string]struct{}
	removedderived_notes map[string]struct{}
	clearedderived_notes bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotID sets the "bot_id" field.
func (m *UserMutation) SetBotID(s string) {
	m.bot = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *UserMutation) BotID() (r string, exists bool) {
	v := m.bot
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *UserMutation) ResetBotID() {
	m.bot = nil
}

// SetExternalID sets the "external_id" field.
func (m *UserMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *UserMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *UserMutation) ResetExternalID() {
	m.external_id = nil
}

// SetBasicInfo sets the "basic_info" field.
func (m *UserMutation) SetBasicInfo(value map[string]interface{}) {
	m.basic_info = &value
}

// BasicInfo returns the value of the "basic_info" field in the mutation.
func (m *UserMutation) BasicInfo() (r map[string]interface{}, exists bool) {
	v := m.basic_info
	if v == nil {
		return
	}
	return *v, true
}

// OldBasicInfo returns the old "basic_info" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBasicInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBasicInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBasicInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBasicInfo: %w", err)
	}
	return oldValue.BasicInfo, nil
}

// ClearBasicInfo clears the value of the "basic_info" field.
func (m *UserMutation) ClearBasicInfo() {
	m.basic_info = nil
	m.clearedFields[user.FieldBasicInfo] = struct{}{}
}

// BasicInfoCleared returns if the "basic_info" field was cleared in this mutation.
func (m *UserMutation) BasicInfoCleared() bool {
	_, ok := m.clearedFields[user.FieldBasicInfo]
	return ok
}

// ResetBasicInfo resets all changes to the "basic_info" field.
func (m *UserMutation) ResetBasicInfo() {
	m.basic_info = nil
	delete(m.clearedFields, user.FieldBasicInfo)
}

// SetCurrentStage sets the "current_stage" field.
func (m *UserMutation) SetCurrentStage(us user.CurrentStage) {
	m.current_stage = &us
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *UserMutation) CurrentStage() (r user.CurrentStage, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCurrentStage(ctx context.Context) (v user.CurrentStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *UserMutation) ResetCurrentStage() {
	m.current_stage = nil
}

// SetDimensions sets the "dimensions" field.
func (m *UserMutation) SetDimensions(value map[string]float64) {
	m.dimensions = &value
}

// Dimensions returns the value of the "dimensions" field in the mutation.
func (m *UserMutation) Dimensions() (r map[string]float64, exists bool) {
	v := m.dimensions
	if v == nil {
		return
	}
	return *v, true
}

// OldDimensions returns the old "dimensions" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDimensions(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimensions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimensions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimensions: %w", err)
	}
	return oldValue.Dimensions, nil
}

// ClearDimensions clears the value of the "dimensions" field.
func (m *UserMutation) ClearDimensions() {
	m.dimensions = nil
	m.clearedFields[user.FieldDimensions] = struct{}{}
}

// DimensionsCleared returns if the "dimensions" field was cleared in this mutation.
func (m *UserMutation) DimensionsCleared() bool {
	_, ok := m.clearedFields[user.FieldDimensions]
	return ok
}

// ResetDimensions resets all changes to the "dimensions" field.
func (m *UserMutation) ResetDimensions() {
	m.dimensions = nil
	delete(m.clearedFields, user.FieldDimensions)
}

// SetInferredProfile sets the "inferred_profile" field.
func (m *UserMutation) SetInferredProfile(value map[string]string) {
	m.inferred_profile = &value
}

// InferredProfile returns the value of the "inferred_profile" field in the mutation.
func (m *UserMutation) InferredProfile() (r map[string]string, exists bool) {
	v := m.inferred_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldInferredProfile returns the old "inferred_profile" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldInferredProfile(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInferredProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInferredProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInferredProfile: %w", err)
	}
	return oldValue.InferredProfile, nil
}

// ClearInferredProfile clears the value of the "inferred_profile" field.
func (m *UserMutation) ClearInferredProfile() {
	m.inferred_profile = nil
	m.clearedFields[user.FieldInferredProfile] = struct{}{}
}

// InferredProfileCleared returns if the "inferred_profile" field was cleared in this mutation.
func (m *UserMutation) InferredProfileCleared() bool {
	_, ok := m.clearedFields[user.FieldInferredProfile]
	return ok
}

// ResetInferredProfile resets all changes to the "inferred_profile" field.
func (m *UserMutation) ResetInferredProfile() {
	m.inferred_profile = nil
	delete(m.clearedFields, user.FieldInferredProfile)
}

// SetAssets sets the "assets" field.
func (m *UserMutation) SetAssets(value map[string]interface{}) {
	m.assets = &value
}

// Assets returns the value of the "assets" field in the mutation.
func (m *UserMutation) Assets() (r map[string]interface{}, exists bool) {
	v := m.assets
	if v == nil {
		return
	}
	return *v, true
}

// OldAssets returns the old "assets" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAssets(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssets: %w", err)
	}
	return oldValue.Assets, nil
}

// ClearAssets clears the value of the "assets" field.
func (m *UserMutation) ClearAssets() {
	m.assets = nil
	m.clearedFields[user.FieldAssets] = struct{}{}
}

// AssetsCleared returns if the "assets" field was cleared in this mutation.
func (m *UserMutation) AssetsCleared() bool {
	_, ok := m.clearedFields[user.FieldAssets]
	return ok
}

// ResetAssets resets all changes to the "assets" field.
func (m *UserMutation) ResetAssets() {
	m.assets = nil
	delete(m.clearedFields, user.FieldAssets)
}

// SetSptInfo sets the "spt_info" field.
func (m *UserMutation) SetSptInfo(value map[string]interface{}) {
	m.spt_info = &value
}

// SptInfo returns the value of the "spt_info" field in the mutation.
func (m *UserMutation) SptInfo() (r map[string]interface{}, exists bool) {
	v := m.spt_info
	if v == nil {
		return
	}
	return *v, true
}

// OldSptInfo returns the old "spt_info" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSptInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSptInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSptInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSptInfo: %w", err)
	}
	return oldValue.SptInfo, nil
}

// ClearSptInfo clears the value of the "spt_info" field.
func (m *UserMutation) ClearSptInfo() {
	m.spt_info = nil
	m.clearedFields[user.FieldSptInfo] = struct{}{}
}

// SptInfoCleared returns if the "spt_info" field was cleared in this mutation.
func (m *UserMutation) SptInfoCleared() bool {
	_, ok := m.clearedFields[user.FieldSptInfo]
	return ok
}

// ResetSptInfo resets all changes to the "spt_info" field.
func (m *UserMutation) ResetSptInfo() {
	m.spt_info = nil
	delete(m.clearedFields, user.FieldSptInfo)
}

// SetConversationSummary sets the "conversation_summary" field.
func (m *UserMutation) SetConversationSummary(s string) {
	m.conversation_summary = &s
}

// ConversationSummary returns the value of the "conversation_summary" field in the mutation.
func (m *UserMutation) ConversationSummary() (r string, exists bool) {
	v := m.conversation_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationSummary returns the old "conversation_summary" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldConversationSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationSummary: %w", err)
	}
	return oldValue.ConversationSummary, nil
}

// ClearConversationSummary clears the value of the "conversation_summary" field.
func (m *UserMutation) ClearConversationSummary() {
	m.conversation_summary = nil
	m.clearedFields[user.FieldConversationSummary] = struct{}{}
}

// ConversationSummaryCleared returns if the "conversation_summary" field was cleared in this mutation.
func (m *UserMutation) ConversationSummaryCleared() bool {
	_, ok := m.clearedFields[user.FieldConversationSummary]
	return ok
}

// ResetConversationSummary resets all changes to the "conversation_summary" field.
func (m *UserMutation) ResetConversationSummary() {
	m.conversation_summary = nil
	delete(m.clearedFields, user.FieldConversationSummary)
}

// SetUrgentTasks sets the "urgent_tasks" field.
func (m *UserMutation) SetUrgentTasks(i []interface{}) {
	m.urgent_tasks = &i
	m.appendurgent_tasks = nil
}

// UrgentTasks returns the value of the "urgent_tasks" field in the mutation.
func (m *UserMutation) UrgentTasks() (r []interface{}, exists bool) {
	v := m.urgent_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgentTasks returns the old "urgent_tasks" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUrgentTasks(ctx context.Context) (v []interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgentTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgentTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgentTasks: %w", err)
	}
	return oldValue.UrgentTasks, nil
}

// AppendUrgentTasks adds i to the "urgent_tasks" field.
func (m *UserMutation) AppendUrgentTasks(i []interface{}) {
	m.appendurgent_tasks = append(m.appendurgent_tasks, i...)
}

// AppendedUrgentTasks returns the list of values that were appended to the "urgent_tasks" field in this mutation.
func (m *UserMutation) AppendedUrgentTasks() ([]interface{}, bool) {
	if len(m.appendurgent_tasks) == 0 {
		return nil, false
	}
	return m.appendurgent_tasks, true
}

// ClearUrgentTasks clears the value of the "urgent_tasks" field.
func (m *UserMutation) ClearUrgentTasks() {
	m.urgent_tasks = nil
	m.appendurgent_tasks = nil
	m.clearedFields[user.FieldUrgentTasks] = struct{}{}
}

// UrgentTasksCleared returns if the "urgent_tasks" field was cleared in this mutation.
func (m *UserMutation) UrgentTasksCleared() bool {
	_, ok := m.clearedFields[user.FieldUrgentTasks]
	return ok
}

// ResetUrgentTasks resets all changes to the "urgent_tasks" field.
func (m *UserMutation) ResetUrgentTasks() {
	m.urgent_tasks = nil
	m.appendurgent_tasks = nil
	delete(m.clearedFields, user.FieldUrgentTasks)
}

// SetTaskList sets the "task_list" field.
func (m *UserMutation) SetTaskList(i []interface{}) {
	m.task_list = &i
	m.appendtask_list = nil
}

// TaskList returns the value of the "task_list" field in the mutation.
func (m *UserMutation) TaskList() (r []interface{}, exists bool) {
	v := m.task_list
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskList returns the old "task_list" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTaskList(ctx context.Context) (v []interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskList is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskList requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskList: %w", err)
	}
	return oldValue.TaskList, nil
}

// AppendTaskList adds i to the "task_list" field.
func (m *UserMutation) AppendTaskList(i []interface{}) {
	m.appendtask_list = append(m.appendtask_list, i...)
}

// AppendedTaskList returns the list of values that were appended to the "task_list" field in this mutation.
func (m *UserMutation) AppendedTaskList() ([]interface{}, bool) {
	if len(m.appendtask_list) == 0 {
		return nil, false
	}
	return m.appendtask_list, true
}

// ClearTaskList clears the value of the "task_list" field.
func (m *UserMutation) ClearTaskList() {
	m.task_list = nil
	m.appendtask_list = nil
	m.clearedFields[user.FieldTaskList] = struct{}{}
}

// TaskListCleared returns if the "task_list" field was cleared in this mutation.
func (m *UserMutation) TaskListCleared() bool {
	_, ok := m.clearedFields[user.FieldTaskList]
	return ok
}

// ResetTaskList resets all changes to the "task_list" field.
func (m *UserMutation) ResetTaskList() {
	m.task_list = nil
	m.appendtask_list = nil
	delete(m.clearedFields, user.FieldTaskList)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBot clears the "bot" edge to the Bot entity.
func (m *UserMutation) ClearBot() {
	m.clearedbot = true
	m.clearedFields[user.FieldBotID] = struct{}{}
}

// BotCleared reports if the "bot" edge to the Bot entity was cleared.
func (m *UserMutation) BotCleared() bool {
	return m.clearedbot
}

// BotIDs returns the "bot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BotID instead. It exists only for internal usage by the builders.
func (m *UserMutation) BotIDs() (ids []string) {
	if id := m.bot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBot resets all changes to the "bot" edge.
func (m *UserMutation) ResetBot() {
	m.bot = nil
	m.clearedbot = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *UserMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *UserMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *UserMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *UserMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *UserMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *UserMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *UserMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by ids.
func (m *UserMutation) AddTranscriptIDs(ids ...string) {
	if m.transcripts == nil {
		m.transcripts = make(map[string]struct{})
	}
	for i := range ids {
		m.transcripts[ids[i]] = struct{}{}
	}
}

// ClearTranscripts clears the "transcripts" edge to the Transcript entity.
func (m *UserMutation) ClearTranscripts() {
	m.clearedtranscripts = true
}

// TranscriptsCleared reports if the "transcripts" edge to the Transcript entity was cleared.
func (m *UserMutation) TranscriptsCleared() bool {
	return m.clearedtranscripts
}

// RemoveTranscriptIDs removes the "transcripts" edge to the Transcript entity by IDs.
func (m *UserMutation) RemoveTranscriptIDs(ids ...string) {
	if m.removedtranscripts == nil {
		m.removedtranscripts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.transcripts, ids[i])
		m.removedtranscripts[ids[i]] = struct{}{}
	}
}

// RemovedTranscripts returns the removed IDs of the "transcripts" edge to the Transcript entity.
func (m *UserMutation) RemovedTranscriptsIDs() (ids []string) {
	for id := range m.removedtranscripts {
		ids = append(ids, id)
	}
	return
}

// TranscriptsIDs returns the "transcripts" edge IDs in the mutation.
func (m *UserMutation) TranscriptsIDs() (ids []string) {
	for id := range m.transcripts {
		ids = append(ids, id)
	}
	return
}

// ResetTranscripts resets all changes to the "transcripts" edge.
func (m *UserMutation) ResetTranscripts() {
	m.transcripts = nil
	m.clearedtranscripts = false
	m.removedtranscripts = nil
}

// AddDerivedNoteIDs adds the "derived_notes" edge to the DerivedNote entity by ids.
func (m *UserMutation) AddDerivedNoteIDs(ids ...string) {
	if m.derived_notes == nil {
		m.derived_notes = make(map[string]struct{})
	}
	for i := range ids {
		m.derived_notes[ids[i]] = struct{}{}
	}
}

// ClearDerivedNotes clears the "derived_notes" edge to the DerivedNote entity.
func (m *UserMutation) ClearDerivedNotes() {
	m.clearedderived_notes = true
}

// DerivedNotesCleared reports if the "derived_notes" edge to the DerivedNote entity was cleared.
func (m *UserMutation) DerivedNotesCleared() bool {
	return m.clearedderived_notes
}

// RemoveDerivedNoteIDs removes the "derived_notes" edge to the DerivedNote entity by IDs.
func (m *UserMutation) RemoveDerivedNoteIDs(ids ...string) {
	if m.removedderived_notes == nil {
		m.removedderived_notes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.derived_notes, ids[i])
		m.removedderived_notes[ids[i]] = struct{}{}
	}
}

// RemovedDerivedNotes returns the removed IDs of the "derived_notes" edge to the DerivedNote entity.
func (m *UserMutation) RemovedDerivedNotesIDs() (ids []string) {
	for id := range m.removedderived_notes {
		ids = append(ids, id)
	}
	return
}

// DerivedNotesIDs returns the "derived_notes" edge IDs in the mutation.
func (m *UserMutation) DerivedNotesIDs() (ids []string) {
	for id := range m.derived_notes {
		ids = append(ids, id)
	}
	return
}

// ResetDerivedNotes resets all changes to the "derived_notes" edge.
func (m *UserMutation) ResetDerivedNotes() {
	m.derived_notes = nil
	m.clearedderived_notes = false
	m.removedderived_notes = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.bot != nil {
		fields = append(fields, user.FieldBotID)
	}
	if m.external_id != nil {
		fields = append(fields, user.FieldExternalID)
	}
	if m.basic_info != nil {
		fields = append(fields, user.FieldBasicInfo)
	}
	if m.current_stage != nil {
		fields = append(fields, user.FieldCurrentStage)
	}
	if m.dimensions != nil {
		fields = append(fields, user.FieldDimensions)
	}
	if m.inferred_profile != nil {
		fields = append(fields, user.FieldInferredProfile)
	}
	if m.assets != nil {
		fields = append(fields, user.FieldAssets)
	}
	if m.spt_info != nil {
		fields = append(fields, user.FieldSptInfo)
	}
	if m.conversation_summary != nil {
		fields = append(fields, user.FieldConversationSummary)
	}
	if m.urgent_tasks != nil {
		fields = append(fields, user.FieldUrgentTasks)
	}
	if m.task_list != nil {
		fields = append(fields, user.FieldTaskList)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldBotID:
		return m.BotID()
	case user.FieldExternalID:
		return m.ExternalID()
	case user.FieldBasicInfo:
		return m.BasicInfo()
	case user.FieldCurrentStage:
		return m.CurrentStage()
	case user.FieldDimensions:
		return m.Dimensions()
	case user.FieldInferredProfile:
		return m.InferredProfile()
	case user.FieldAssets:
		return m.Assets()
	case user.FieldSptInfo:
		return m.SptInfo()
	case user.FieldConversationSummary:
		return m.ConversationSummary()
	case user.FieldUrgentTasks:
		return m.UrgentTasks()
	case user.FieldTaskList:
		return m.TaskList()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldBotID:
		return m.OldBotID(ctx)
	case user.FieldExternalID:
		return m.OldExternalID(ctx)
	case user.FieldBasicInfo:
		return m.OldBasicInfo(ctx)
	case user.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case user.FieldDimensions:
		return m.OldDimensions(ctx)
	case user.FieldInferredProfile:
		return m.OldInferredProfile(ctx)
	case user.FieldAssets:
		return m.OldAssets(ctx)
	case user.FieldSptInfo:
		return m.OldSptInfo(ctx)
	case user.FieldConversationSummary:
		return m.OldConversationSummary(ctx)
	case user.FieldUrgentTasks:
		return m.OldUrgentTasks(ctx)
	case user.FieldTaskList:
		return m.OldTaskList(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case user.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case user.FieldBasicInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBasicInfo(v)
		return nil
	case user.FieldCurrentStage:
		v, ok := value.(user.CurrentStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case user.FieldDimensions:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimensions(v)
		return nil
	case user.FieldInferredProfile:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInferredProfile(v)
		return nil
	case user.FieldAssets:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssets(v)
		return nil
	case user.FieldSptInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSptInfo(v)
		return nil
	case user.FieldConversationSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationSummary(v)
		return nil
	case user.FieldUrgentTasks:
		v, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgentTasks(v)
		return nil
	case user.FieldTaskList:
		v, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskList(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldBasicInfo) {
		fields = append(fields, user.FieldBasicInfo)
	}
	if m.FieldCleared(user.FieldDimensions) {
		fields = append(fields, user.FieldDimensions)
	}
	if m.FieldCleared(user.FieldInferredProfile) {
		fields = append(fields, user.FieldInferredProfile)
	}
	if m.FieldCleared(user.FieldAssets) {
		fields = append(fields, user.FieldAssets)
	}
	if m.FieldCleared(user.FieldSptInfo) {
		fields = append(fields, user.FieldSptInfo)
	}
	if m.FieldCleared(user.FieldConversationSummary) {
		fields = append(fields, user.FieldConversationSummary)
	}
	if m.FieldCleared(user.FieldUrgentTasks) {
		fields = append(fields, user.FieldUrgentTasks)
	}
	if m.FieldCleared(user.FieldTaskList) {
		fields = append(fields, user.FieldTaskList)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldBasicInfo:
		m.ClearBasicInfo()
		return nil
	case user.FieldDimensions:
		m.ClearDimensions()
		return nil
	case user.FieldInferredProfile:
		m.ClearInferredProfile()
		return nil
	case user.FieldAssets:
		m.ClearAssets()
		return nil
	case user.FieldSptInfo:
		m.ClearSptInfo()
		return nil
	case user.FieldConversationSummary:
		m.ClearConversationSummary()
		return nil
	case user.FieldUrgentTasks:
		m.ClearUrgentTasks()
		return nil
	case user.FieldTaskList:
		m.ClearTaskList()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldBotID:
		m.ResetBotID()
		return nil
	case user.FieldExternalID:
		m.ResetExternalID()
		return nil
	case user.FieldBasicInfo:
		m.ResetBasicInfo()
		return nil
	case user.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case user.FieldDimensions:
		m.ResetDimensions()
		return nil
	case user.FieldInferredProfile:
		m.ResetInferredProfile()
		return nil
	case user.FieldAssets:
		m.ResetAssets()
		return nil
	case user.FieldSptInfo:
		m.ResetSptInfo()
		return nil
	case user.FieldConversationSummary:
		m.ResetConversationSummary()
		return nil
	case user.FieldUrgentTasks:
		m.ResetUrgentTasks()
		return nil
	case user.FieldTaskList:
		m.ResetTaskList()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.bot != nil {
		edges = append(edges, user.EdgeBot)
	}
	if m.messages != nil {
		edges = append(edges, user.EdgeMessages)
	}
	if m.transcripts != nil {
		edges = append(edges, user.EdgeTranscripts)
	}
	if m.derived_notes != nil {
		edges = append(edges, user.EdgeDerivedNotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeBot:
		if id := m.bot; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTranscripts:
		ids := make([]ent.Value, 0, len(m.transcripts))
		for id := range m.transcripts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDerivedNotes:
		ids := make([]ent.Value, 0, len(m.derived_notes))
		for id := range m.derived_notes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmessages != nil {
		edges = append(edges, user.EdgeMessages)
	}
	if m.removedtranscripts != nil {
		edges = append(edges, user.EdgeTranscripts)
	}
	if m.removedderived_notes != nil {
		edges = append(edges, user.EdgeDerivedNotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTranscripts:
		ids := make([]ent.Value, 0, len(m.removedtranscripts))
		for id := range m.removedtranscripts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDerivedNotes:
		ids := make([]ent.Value, 0, len(m.removedderived_notes))
		for id := range m.removedderived_notes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedbot {
		edges = append(edges, user.EdgeBot)
	}
	if m.clearedmessages {
		edges = append(edges, user.EdgeMessages)
	}
	if m.clearedtranscripts {
		edges = append(edges, user.EdgeTranscripts)
	}
	if m.clearedderived_notes {
		edges = append(edges, user.EdgeDerivedNotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeBot:
		return m.clearedbot
	case user.EdgeMessages:
		return m.clearedmessages
	case user.EdgeTranscripts:
		return m.clearedtranscripts
	case user.EdgeDerivedNotes:
		return m.clearedderived_notes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeBot:
		m.ClearBot()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeBot:
		m.ResetBot()
		return nil
	case user.EdgeMessages:
		m.ResetMessages()
		return nil
	case user.EdgeTranscripts:
		m.ResetTranscripts()
		return nil
	case user.EdgeDerivedNotes:
		m.ResetDerivedNotes()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
