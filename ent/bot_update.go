// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rapport-chat/rapport/ent/bot"
	"github.com/rapport-chat/rapport/ent/predicate"
	"github.com/rapport-chat/rapport/ent/user"
)

// BotUpdate is the builder for updating Bot entities.
type BotUpdate struct {
	config
	hooks    []Hook
	mutation *BotMutation
}

// Where appends a list predicates to the BotUpdate builder.
func (_u *BotUpdate) Where(ps ...predicate.Bot) *BotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BotUpdate) SetName(v string) *BotUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BotUpdate) SetNillableName(v *string) *BotUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBasicInfo sets the "basic_info" field.
func (_u *BotUpdate) SetBasicInfo(v map[string]interface{}) *BotUpdate {
	_u.mutation.SetBasicInfo(v)
	return _u
}

// SetBigFive sets the "big_five" field.
func (_u *BotUpdate) SetBigFive(v map[string]float64) *BotUpdate {
	_u.mutation.SetBigFive(v)
	return _u
}

// SetPersona sets the "persona" field.
func (_u *BotUpdate) SetPersona(v map[string]interface{}) *BotUpdate {
	_u.mutation.SetPersona(v)
	return _u
}

// ClearPersona clears the value of the "persona" field.
func (_u *BotUpdate) ClearPersona() *BotUpdate {
	_u.mutation.ClearPersona()
	return _u
}

// SetMoodState sets the "mood_state" field.
func (_u *BotUpdate) SetMoodState(v map[string]interface{}) *BotUpdate {
	_u.mutation.SetMoodState(v)
	return _u
}

// ClearMoodState clears the value of the "mood_state" field.
func (_u *BotUpdate) ClearMoodState() *BotUpdate {
	_u.mutation.ClearMoodState()
	return _u
}

// SetUrgentTasks sets the "urgent_tasks" field.
func (_u *BotUpdate) SetUrgentTasks(v []interface{}) *BotUpdate {
	_u.mutation.SetUrgentTasks(v)
	return _u
}

// AppendUrgentTasks appends value to the "urgent_tasks" field.
func (_u *BotUpdate) AppendUrgentTasks(v []interface{}) *BotUpdate {
	_u.mutation.AppendUrgentTasks(v)
	return _u
}

// ClearUrgentTasks clears the value of the "urgent_tasks" field.
func (_u *BotUpdate) ClearUrgentTasks() *BotUpdate {
	_u.mutation.ClearUrgentTasks()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotUpdate) SetUpdatedAt(v time.Time) *BotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_u *BotUpdate) AddUserIDs(ids ...string) *BotUpdate {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the User entity.
func (_u *BotUpdate) AddUsers(v ...*User) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// Mutation returns the BotMutation object of the builder.
func (_u *BotUpdate) Mutation() *BotMutation {
	return _u.mutation
}

// ClearUsers clears all "users" edges to the User entity.
func (_u *BotUpdate) ClearUsers() *BotUpdate {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (_u *BotUpdate) RemoveUserIDs(ids ...string) *BotUpdate {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to User entities.
func (_u *BotUpdate) RemoveUsers(v ...*User) *BotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(bot.Table, bot.Columns, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bot.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BasicInfo(); ok {
		_spec.SetField(bot.FieldBasicInfo, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BigFive(); ok {
		_spec.SetField(bot.FieldBigFive, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(bot.FieldPersona, field.TypeJSON, value)
	}
	if _u.mutation.PersonaCleared() {
		_spec.ClearField(bot.FieldPersona, field.TypeJSON)
	}
	if value, ok := _u.mutation.MoodState(); ok {
		_spec.SetField(bot.FieldMoodState, field.TypeJSON, value)
	}
	if _u.mutation.MoodStateCleared() {
		_spec.ClearField(bot.FieldMoodState, field.TypeJSON)
	}
	if value, ok := _u.mutation.UrgentTasks(); ok {
		_spec.SetField(bot.FieldUrgentTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUrgentTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bot.FieldUrgentTasks, value)
		})
	}
	if _u.mutation.UrgentTasksCleared() {
		_spec.ClearField(bot.FieldUrgentTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.UsersTable,
			Columns: []string{bot.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.UsersTable,
			Columns: []string{bot.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.UsersTable,
			Columns: []string{bot.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotUpdateOne is the builder for updating a single Bot entity.
type BotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotMutation
}

// SetName sets the "name" field.
func (_u *BotUpdateOne) SetName(v string) *BotUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BotUpdateOne) SetNillableName(v *string) *BotUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBasicInfo sets the "basic_info" field.
func (_u *BotUpdateOne) SetBasicInfo(v map[string]interface{}) *BotUpdateOne {
	_u.mutation.SetBasicInfo(v)
	return _u
}

// SetBigFive sets the "big_five" field.
func (_u *BotUpdateOne) SetBigFive(v map[string]float64) *BotUpdateOne {
	_u.mutation.SetBigFive(v)
	return _u
}

// SetPersona sets the "persona" field.
func (_u *BotUpdateOne) SetPersona(v map[string]interface{}) *BotUpdateOne {
	_u.mutation.SetPersona(v)
	return _u
}

// ClearPersona clears the value of the "persona" field.
func (_u *BotUpdateOne) ClearPersona() *BotUpdateOne {
	_u.mutation.ClearPersona()
	return _u
}

// SetMoodState sets the "mood_state" field.
func (_u *BotUpdateOne) SetMoodState(v map[string]interface{}) *BotUpdateOne {
	_u.mutation.SetMoodState(v)
	return _u
}

// ClearMoodState clears the value of the "mood_state" field.
func (_u *BotUpdateOne) ClearMoodState() *BotUpdateOne {
	_u.mutation.ClearMoodState()
	return _u
}

// SetUrgentTasks sets the "urgent_tasks" field.
func (_u *BotUpdateOne) SetUrgentTasks(v []interface{}) *BotUpdateOne {
	_u.mutation.SetUrgentTasks(v)
	return _u
}

// AppendUrgentTasks appends value to the "urgent_tasks" field.
func (_u *BotUpdateOne) AppendUrgentTasks(v []interface{}) *BotUpdateOne {
	_u.mutation.AppendUrgentTasks(v)
	return _u
}

// ClearUrgentTasks clears the value of the "urgent_tasks" field.
func (_u *BotUpdateOne) ClearUrgentTasks() *BotUpdateOne {
	_u.mutation.ClearUrgentTasks()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotUpdateOne) SetUpdatedAt(v time.Time) *BotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_u *BotUpdateOne) AddUserIDs(ids ...string) *BotUpdateOne {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the User entity.
func (_u *BotUpdateOne) AddUsers(v ...*User) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// Mutation returns the BotMutation object of the builder.
func (_u *BotUpdateOne) Mutation() *BotMutation {
	return _u.mutation
}

// ClearUsers clears all "users" edges to the User entity.
func (_u *BotUpdateOne) ClearUsers() *BotUpdateOne {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (_u *BotUpdateOne) RemoveUserIDs(ids ...string) *BotUpdateOne {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to User entities.
func (_u *BotUpdateOne) RemoveUsers(v ...*User) *BotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// Where appends a list predicates to the BotUpdate builder.
func (_u *BotUpdateOne) Where(ps ...predicate.Bot) *BotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotUpdateOne) Select(field string, fields ...string) *BotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bot entity.
func (_u *BotUpdateOne) Save(ctx context.Context) (*Bot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotUpdateOne) SaveX(ctx context.Context) *Bot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BotUpdateOne) sqlSave(ctx context.Context) (_node *Bot, err error) {
	_spec := sqlgraph.NewUpdateSpec(bot.Table, bot.Columns, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bot.FieldID)
		for _, f := range fields {
			if !bot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bot.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BasicInfo(); ok {
		_spec.SetField(bot.FieldBasicInfo, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BigFive(); ok {
		_spec.SetField(bot.FieldBigFive, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(bot.FieldPersona, field.TypeJSON, value)
	}
	if _u.mutation.PersonaCleared() {
		_spec.ClearField(bot.FieldPersona, field.TypeJSON)
	}
	if value, ok := _u.mutation.MoodState(); ok {
		_spec.SetField(bot.FieldMoodState, field.TypeJSON, value)
	}
	if _u.mutation.MoodStateCleared() {
		_spec.ClearField(bot.FieldMoodState, field.TypeJSON)
	}
	if value, ok := _u.mutation.UrgentTasks(); ok {
		_spec.SetField(bot.FieldUrgentTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUrgentTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bot.FieldUrgentTasks, value)
		})
	}
	if _u.mutation.UrgentTasksCleared() {
		_spec.ClearField(bot.FieldUrgentTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.UsersTable,
			Columns: []string{bot.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.UsersTable,
			Columns: []string{bot.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bot.UsersTable,
			Columns: []string{bot.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
