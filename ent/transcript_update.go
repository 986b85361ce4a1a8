// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/predicate"
	"github.com/rapport-chat/rapport/ent/transcript"
)

// TranscriptUpdate is the builder for updating Transcript entities.
type TranscriptUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptMutation
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdate) Where(ps ...predicate.Transcript) *TranscriptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTurnIndex sets the "turn_index" field.
func (_u *TranscriptUpdate) SetTurnIndex(v int) *TranscriptUpdate {
	_u.mutation.ResetTurnIndex()
	_u.mutation.SetTurnIndex(v)
	return _u
}

// SetNillableTurnIndex sets the "turn_index" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableTurnIndex(v *int) *TranscriptUpdate {
	if v != nil {
		_u.SetTurnIndex(*v)
	}
	return _u
}

// AddTurnIndex adds value to the "turn_index" field.
func (_u *TranscriptUpdate) AddTurnIndex(v int) *TranscriptUpdate {
	_u.mutation.AddTurnIndex(v)
	return _u
}

// SetUserText sets the "user_text" field.
func (_u *TranscriptUpdate) SetUserText(v string) *TranscriptUpdate {
	_u.mutation.SetUserText(v)
	return _u
}

// SetNillableUserText sets the "user_text" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableUserText(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetUserText(*v)
	}
	return _u
}

// SetBotText sets the "bot_text" field.
func (_u *TranscriptUpdate) SetBotText(v string) *TranscriptUpdate {
	_u.mutation.SetBotText(v)
	return _u
}

// SetNillableBotText sets the "bot_text" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableBotText(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetBotText(*v)
	}
	return _u
}

// SetEntities sets the "entities" field.
func (_u *TranscriptUpdate) SetEntities(v []string) *TranscriptUpdate {
	_u.mutation.SetEntities(v)
	return _u
}

// AppendEntities appends value to the "entities" field.
func (_u *TranscriptUpdate) AppendEntities(v []string) *TranscriptUpdate {
	_u.mutation.AppendEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *TranscriptUpdate) ClearEntities() *TranscriptUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TranscriptUpdate) SetTopic(v string) *TranscriptUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableTopic(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *TranscriptUpdate) ClearTopic() *TranscriptUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetImportance sets the "importance" field.
func (_u *TranscriptUpdate) SetImportance(v float64) *TranscriptUpdate {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableImportance(v *float64) *TranscriptUpdate {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *TranscriptUpdate) AddImportance(v float64) *TranscriptUpdate {
	_u.mutation.AddImportance(v)
	return _u
}

// SetShortContext sets the "short_context" field.
func (_u *TranscriptUpdate) SetShortContext(v string) *TranscriptUpdate {
	_u.mutation.SetShortContext(v)
	return _u
}

// SetNillableShortContext sets the "short_context" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableShortContext(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetShortContext(*v)
	}
	return _u
}

// ClearShortContext clears the value of the "short_context" field.
func (_u *TranscriptUpdate) ClearShortContext() *TranscriptUpdate {
	_u.mutation.ClearShortContext()
	return _u
}

// AddNoteIDs adds the "notes" edge to the DerivedNote entity by IDs.
func (_u *TranscriptUpdate) AddNoteIDs(ids ...string) *TranscriptUpdate {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the DerivedNote entity.
func (_u *TranscriptUpdate) AddNotes(v ...*DerivedNote) *TranscriptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdate) Mutation() *TranscriptMutation {
	return _u.mutation
}

// ClearNotes clears all "notes" edges to the DerivedNote entity.
func (_u *TranscriptUpdate) ClearNotes() *TranscriptUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to DerivedNote entities by IDs.
func (_u *TranscriptUpdate) RemoveNoteIDs(ids ...string) *TranscriptUpdate {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to DerivedNote entities.
func (_u *TranscriptUpdate) RemoveNotes(v ...*DerivedNote) *TranscriptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transcript.user"`)
	}
	return nil
}

func (_u *TranscriptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TurnIndex(); ok {
		_spec.SetField(transcript.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnIndex(); ok {
		_spec.AddField(transcript.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserText(); ok {
		_spec.SetField(transcript.FieldUserText, field.TypeString, value)
	}
	if value, ok := _u.mutation.BotText(); ok {
		_spec.SetField(transcript.FieldBotText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(transcript.FieldEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldEntities, value)
		})
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(transcript.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(transcript.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(transcript.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(transcript.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(transcript.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ShortContext(); ok {
		_spec.SetField(transcript.FieldShortContext, field.TypeString, value)
	}
	if _u.mutation.ShortContextCleared() {
		_spec.ClearField(transcript.FieldShortContext, field.TypeString)
	}
	if _u.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.NotesTable,
			Columns: []string{transcript.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.NotesTable,
			Columns: []string{transcript.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.NotesTable,
			Columns: []string{transcript.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptUpdateOne is the builder for updating a single Transcript entity.
type TranscriptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptMutation
}

// SetTurnIndex sets the "turn_index" field.
func (_u *TranscriptUpdateOne) SetTurnIndex(v int) *TranscriptUpdateOne {
	_u.mutation.ResetTurnIndex()
	_u.mutation.SetTurnIndex(v)
	return _u
}

// SetNillableTurnIndex sets the "turn_index" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableTurnIndex(v *int) *TranscriptUpdateOne {
	if v != nil {
		_u.SetTurnIndex(*v)
	}
	return _u
}

// AddTurnIndex adds value to the "turn_index" field.
func (_u *TranscriptUpdateOne) AddTurnIndex(v int) *TranscriptUpdateOne {
	_u.mutation.AddTurnIndex(v)
	return _u
}

// SetUserText sets the "user_text" field.
func (_u *TranscriptUpdateOne) SetUserText(v string) *TranscriptUpdateOne {
	_u.mutation.SetUserText(v)
	return _u
}

// SetNillableUserText sets the "user_text" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableUserText(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetUserText(*v)
	}
	return _u
}

// SetBotText sets the "bot_text" field.
func (_u *TranscriptUpdateOne) SetBotText(v string) *TranscriptUpdateOne {
	_u.mutation.SetBotText(v)
	return _u
}

// SetNillableBotText sets the "bot_text" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableBotText(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetBotText(*v)
	}
	return _u
}

// SetEntities sets the "entities" field.
func (_u *TranscriptUpdateOne) SetEntities(v []string) *TranscriptUpdateOne {
	_u.mutation.SetEntities(v)
	return _u
}

// AppendEntities appends value to the "entities" field.
func (_u *TranscriptUpdateOne) AppendEntities(v []string) *TranscriptUpdateOne {
	_u.mutation.AppendEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *TranscriptUpdateOne) ClearEntities() *TranscriptUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TranscriptUpdateOne) SetTopic(v string) *TranscriptUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableTopic(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *TranscriptUpdateOne) ClearTopic() *TranscriptUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetImportance sets the "importance" field.
func (_u *TranscriptUpdateOne) SetImportance(v float64) *TranscriptUpdateOne {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableImportance(v *float64) *TranscriptUpdateOne {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *TranscriptUpdateOne) AddImportance(v float64) *TranscriptUpdateOne {
	_u.mutation.AddImportance(v)
	return _u
}

// SetShortContext sets the "short_context" field.
func (_u *TranscriptUpdateOne) SetShortContext(v string) *TranscriptUpdateOne {
	_u.mutation.SetShortContext(v)
	return _u
}

// SetNillableShortContext sets the "short_context" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableShortContext(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetShortContext(*v)
	}
	return _u
}

// ClearShortContext clears the value of the "short_context" field.
func (_u *TranscriptUpdateOne) ClearShortContext() *TranscriptUpdateOne {
	_u.mutation.ClearShortContext()
	return _u
}

// AddNoteIDs adds the "notes" edge to the DerivedNote entity by IDs.
func (_u *TranscriptUpdateOne) AddNoteIDs(ids ...string) *TranscriptUpdateOne {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the DerivedNote entity.
func (_u *TranscriptUpdateOne) AddNotes(v ...*DerivedNote) *TranscriptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdateOne) Mutation() *TranscriptMutation {
	return _u.mutation
}

// ClearNotes clears all "notes" edges to the DerivedNote entity.
func (_u *TranscriptUpdateOne) ClearNotes() *TranscriptUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to DerivedNote entities by IDs.
func (_u *TranscriptUpdateOne) RemoveNoteIDs(ids ...string) *TranscriptUpdateOne {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to DerivedNote entities.
func (_u *TranscriptUpdateOne) RemoveNotes(v ...*DerivedNote) *TranscriptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdateOne) Where(ps ...predicate.Transcript) *TranscriptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptUpdateOne) Select(field string, fields ...string) *TranscriptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transcript entity.
func (_u *TranscriptUpdateOne) Save(ctx context.Context) (*Transcript, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdateOne) SaveX(ctx context.Context) *Transcript {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transcript.user"`)
	}
	return nil
}

func (_u *TranscriptUpdateOne) sqlSave(ctx context.Context) (_node *Transcript, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transcript.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcript.FieldID)
		for _, f := range fields {
			if !transcript.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcript.FieldID {
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
	if value, ok := _u.mutation.TurnIndex(); ok {
		_spec.SetField(transcript.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnIndex(); ok {
		_spec.AddField(transcript.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserText(); ok {
		_spec.SetField(transcript.FieldUserText, field.TypeString, value)
	}
	if value, ok := _u.mutation.BotText(); ok {
		_spec.SetField(transcript.FieldBotText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(transcript.FieldEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldEntities, value)
		})
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(transcript.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(transcript.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(transcript.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(transcript.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(transcript.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ShortContext(); ok {
		_spec.SetField(transcript.FieldShortContext, field.TypeString, value)
	}
	if _u.mutation.ShortContextCleared() {
		_spec.ClearField(transcript.FieldShortContext, field.TypeString)
	}
	if _u.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.NotesTable,
			Columns: []string{transcript.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.NotesTable,
			Columns: []string{transcript.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.NotesTable,
			Columns: []string{transcript.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transcript{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
