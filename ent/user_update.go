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
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/message"
	"github.com/rapport-chat/rapport/ent/predicate"
	"github.com/rapport-chat/rapport/ent/transcript"
	"github.com/rapport-chat/rapport/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBasicInfo sets the "basic_info" field.
func (_u *UserUpdate) SetBasicInfo(v map[string]interface{}) *UserUpdate {
	_u.mutation.SetBasicInfo(v)
	return _u
}

// ClearBasicInfo clears the value of the "basic_info" field.
func (_u *UserUpdate) ClearBasicInfo() *UserUpdate {
	_u.mutation.ClearBasicInfo()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *UserUpdate) SetCurrentStage(v user.CurrentStage) *UserUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCurrentStage(v *user.CurrentStage) *UserUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetDimensions sets the "dimensions" field.
func (_u *UserUpdate) SetDimensions(v map[string]float64) *UserUpdate {
	_u.mutation.SetDimensions(v)
	return _u
}

// ClearDimensions clears the value of the "dimensions" field.
func (_u *UserUpdate) ClearDimensions() *UserUpdate {
	_u.mutation.ClearDimensions()
	return _u
}

// SetInferredProfile sets the "inferred_profile" field.
func (_u *UserUpdate) SetInferredProfile(v map[string]string) *UserUpdate {
	_u.mutation.SetInferredProfile(v)
	return _u
}

// ClearInferredProfile clears the value of the "inferred_profile" field.
func (_u *UserUpdate) ClearInferredProfile() *UserUpdate {
	_u.mutation.ClearInferredProfile()
	return _u
}

// SetAssets sets the "assets" field.
func (_u *UserUpdate) SetAssets(v map[string]interface{}) *UserUpdate {
	_u.mutation.SetAssets(v)
	return _u
}

// ClearAssets clears the value of the "assets" field.
func (_u *UserUpdate) ClearAssets() *UserUpdate {
	_u.mutation.ClearAssets()
	return _u
}

// SetSptInfo sets the "spt_info" field.
func (_u *UserUpdate) SetSptInfo(v map[string]interface{}) *UserUpdate {
	_u.mutation.SetSptInfo(v)
	return _u
}

// ClearSptInfo clears the value of the "spt_info" field.
func (_u *UserUpdate) ClearSptInfo() *UserUpdate {
	_u.mutation.ClearSptInfo()
	return _u
}

// SetConversationSummary sets the "conversation_summary" field.
func (_u *UserUpdate) SetConversationSummary(v string) *UserUpdate {
	_u.mutation.SetConversationSummary(v)
	return _u
}

// SetNillableConversationSummary sets the "conversation_summary" field if the given value is not nil.
func (_u *UserUpdate) SetNillableConversationSummary(v *string) *UserUpdate {
	if v != nil {
		_u.SetConversationSummary(*v)
	}
	return _u
}

// ClearConversationSummary clears the value of the "conversation_summary" field.
func (_u *UserUpdate) ClearConversationSummary() *UserUpdate {
	_u.mutation.ClearConversationSummary()
	return _u
}

// SetUrgentTasks sets the "urgent_tasks" field.
func (_u *UserUpdate) SetUrgentTasks(v []interface{}) *UserUpdate {
	_u.mutation.SetUrgentTasks(v)
	return _u
}

// AppendUrgentTasks appends value to the "urgent_tasks" field.
func (_u *UserUpdate) AppendUrgentTasks(v []interface{}) *UserUpdate {
	_u.mutation.AppendUrgentTasks(v)
	return _u
}

// ClearUrgentTasks clears the value of the "urgent_tasks" field.
func (_u *UserUpdate) ClearUrgentTasks() *UserUpdate {
	_u.mutation.ClearUrgentTasks()
	return _u
}

// SetTaskList sets the "task_list" field.
func (_u *UserUpdate) SetTaskList(v []interface{}) *UserUpdate {
	_u.mutation.SetTaskList(v)
	return _u
}

// AppendTaskList appends value to the "task_list" field.
func (_u *UserUpdate) AppendTaskList(v []interface{}) *UserUpdate {
	_u.mutation.AppendTaskList(v)
	return _u
}

// ClearTaskList clears the value of the "task_list" field.
func (_u *UserUpdate) ClearTaskList() *UserUpdate {
	_u.mutation.ClearTaskList()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *UserUpdate) AddMessageIDs(ids ...string) *UserUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *UserUpdate) AddMessages(v ...*Message) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by IDs.
func (_u *UserUpdate) AddTranscriptIDs(ids ...string) *UserUpdate {
	_u.mutation.AddTranscriptIDs(ids...)
	return _u
}

// AddTranscripts adds the "transcripts" edges to the Transcript entity.
func (_u *UserUpdate) AddTranscripts(v ...*Transcript) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTranscriptIDs(ids...)
}

// AddDerivedNoteIDs adds the "derived_notes" edge to the DerivedNote entity by IDs.
func (_u *UserUpdate) AddDerivedNoteIDs(ids ...string) *UserUpdate {
	_u.mutation.AddDerivedNoteIDs(ids...)
	return _u
}

// AddDerivedNotes adds the "derived_notes" edges to the DerivedNote entity.
func (_u *UserUpdate) AddDerivedNotes(v ...*DerivedNote) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDerivedNoteIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *UserUpdate) ClearMessages() *UserUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *UserUpdate) RemoveMessageIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *UserUpdate) RemoveMessages(v ...*Message) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearTranscripts clears all "transcripts" edges to the Transcript entity.
func (_u *UserUpdate) ClearTranscripts() *UserUpdate {
	_u.mutation.ClearTranscripts()
	return _u
}

// RemoveTranscriptIDs removes the "transcripts" edge to Transcript entities by IDs.
func (_u *UserUpdate) RemoveTranscriptIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveTranscriptIDs(ids...)
	return _u
}

// RemoveTranscripts removes "transcripts" edges to Transcript entities.
func (_u *UserUpdate) RemoveTranscripts(v ...*Transcript) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTranscriptIDs(ids...)
}

// ClearDerivedNotes clears all "derived_notes" edges to the DerivedNote entity.
func (_u *UserUpdate) ClearDerivedNotes() *UserUpdate {
	_u.mutation.ClearDerivedNotes()
	return _u
}

// RemoveDerivedNoteIDs removes the "derived_notes" edge to DerivedNote entities by IDs.
func (_u *UserUpdate) RemoveDerivedNoteIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveDerivedNoteIDs(ids...)
	return _u
}

// RemoveDerivedNotes removes "derived_notes" edges to DerivedNote entities.
func (_u *UserUpdate) RemoveDerivedNotes(v ...*DerivedNote) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDerivedNoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := user.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "User.current_stage": %w`, err)}
		}
	}
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "User.bot"`)
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BasicInfo(); ok {
		_spec.SetField(user.FieldBasicInfo, field.TypeJSON, value)
	}
	if _u.mutation.BasicInfoCleared() {
		_spec.ClearField(user.FieldBasicInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(user.FieldCurrentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Dimensions(); ok {
		_spec.SetField(user.FieldDimensions, field.TypeJSON, value)
	}
	if _u.mutation.DimensionsCleared() {
		_spec.ClearField(user.FieldDimensions, field.TypeJSON)
	}
	if value, ok := _u.mutation.InferredProfile(); ok {
		_spec.SetField(user.FieldInferredProfile, field.TypeJSON, value)
	}
	if _u.mutation.InferredProfileCleared() {
		_spec.ClearField(user.FieldInferredProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Assets(); ok {
		_spec.SetField(user.FieldAssets, field.TypeJSON, value)
	}
	if _u.mutation.AssetsCleared() {
		_spec.ClearField(user.FieldAssets, field.TypeJSON)
	}
	if value, ok := _u.mutation.SptInfo(); ok {
		_spec.SetField(user.FieldSptInfo, field.TypeJSON, value)
	}
	if _u.mutation.SptInfoCleared() {
		_spec.ClearField(user.FieldSptInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConversationSummary(); ok {
		_spec.SetField(user.FieldConversationSummary, field.TypeString, value)
	}
	if _u.mutation.ConversationSummaryCleared() {
		_spec.ClearField(user.FieldConversationSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UrgentTasks(); ok {
		_spec.SetField(user.FieldUrgentTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUrgentTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldUrgentTasks, value)
		})
	}
	if _u.mutation.UrgentTasksCleared() {
		_spec.ClearField(user.FieldUrgentTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskList(); ok {
		_spec.SetField(user.FieldTaskList, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskList(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldTaskList, value)
		})
	}
	if _u.mutation.TaskListCleared() {
		_spec.ClearField(user.FieldTaskList, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.MessagesTable,
			Columns: []string{user.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.MessagesTable,
			Columns: []string{user.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.MessagesTable,
			Columns: []string{user.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranscriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TranscriptsTable,
			Columns: []string{user.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTranscriptsIDs(); len(nodes) > 0 && !_u.mutation.TranscriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TranscriptsTable,
			Columns: []string{user.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TranscriptsTable,
			Columns: []string{user.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DerivedNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DerivedNotesTable,
			Columns: []string{user.DerivedNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDerivedNotesIDs(); len(nodes) > 0 && !_u.mutation.DerivedNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DerivedNotesTable,
			Columns: []string{user.DerivedNotesColumn},
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
	if nodes := _u.mutation.DerivedNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DerivedNotesTable,
			Columns: []string{user.DerivedNotesColumn},
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
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetBasicInfo sets the "basic_info" field.
func (_u *UserUpdateOne) SetBasicInfo(v map[string]interface{}) *UserUpdateOne {
	_u.mutation.SetBasicInfo(v)
	return _u
}

// ClearBasicInfo clears the value of the "basic_info" field.
func (_u *UserUpdateOne) ClearBasicInfo() *UserUpdateOne {
	_u.mutation.ClearBasicInfo()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *UserUpdateOne) SetCurrentStage(v user.CurrentStage) *UserUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCurrentStage(v *user.CurrentStage) *UserUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetDimensions sets the "dimensions" field.
func (_u *UserUpdateOne) SetDimensions(v map[string]float64) *UserUpdateOne {
	_u.mutation.SetDimensions(v)
	return _u
}

// ClearDimensions clears the value of the "dimensions" field.
func (_u *UserUpdateOne) ClearDimensions() *UserUpdateOne {
	_u.mutation.ClearDimensions()
	return _u
}

// SetInferredProfile sets the "inferred_profile" field.
func (_u *UserUpdateOne) SetInferredProfile(v map[string]string) *UserUpdateOne {
	_u.mutation.SetInferredProfile(v)
	return _u
}

// ClearInferredProfile clears the value of the "inferred_profile" field.
func (_u *UserUpdateOne) ClearInferredProfile() *UserUpdateOne {
	_u.mutation.ClearInferredProfile()
	return _u
}

// SetAssets sets the "assets" field.
func (_u *UserUpdateOne) SetAssets(v map[string]interface{}) *UserUpdateOne {
	_u.mutation.SetAssets(v)
	return _u
}

// ClearAssets clears the value of the "assets" field.
func (_u *UserUpdateOne) ClearAssets() *UserUpdateOne {
	_u.mutation.ClearAssets()
	return _u
}

// SetSptInfo sets the "spt_info" field.
func (_u *UserUpdateOne) SetSptInfo(v map[string]interface{}) *UserUpdateOne {
	_u.mutation.SetSptInfo(v)
	return _u
}

// ClearSptInfo clears the value of the "spt_info" field.
func (_u *UserUpdateOne) ClearSptInfo() *UserUpdateOne {
	_u.mutation.ClearSptInfo()
	return _u
}

// SetConversationSummary sets the "conversation_summary" field.
func (_u *UserUpdateOne) SetConversationSummary(v string) *UserUpdateOne {
	_u.mutation.SetConversationSummary(v)
	return _u
}

// SetNillableConversationSummary sets the "conversation_summary" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableConversationSummary(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetConversationSummary(*v)
	}
	return _u
}

// ClearConversationSummary clears the value of the "conversation_summary" field.
func (_u *UserUpdateOne) ClearConversationSummary() *UserUpdateOne {
	_u.mutation.ClearConversationSummary()
	return _u
}

// SetUrgentTasks sets the "urgent_tasks" field.
func (_u *UserUpdateOne) SetUrgentTasks(v []interface{}) *UserUpdateOne {
	_u.mutation.SetUrgentTasks(v)
	return _u
}

// AppendUrgentTasks appends value to the "urgent_tasks" field.
func (_u *UserUpdateOne) AppendUrgentTasks(v []interface{}) *UserUpdateOne {
	_u.mutation.AppendUrgentTasks(v)
	return _u
}

// ClearUrgentTasks clears the value of the "urgent_tasks" field.
func (_u *UserUpdateOne) ClearUrgentTasks() *UserUpdateOne {
	_u.mutation.ClearUrgentTasks()
	return _u
}

// SetTaskList sets the "task_list" field.
func (_u *UserUpdateOne) SetTaskList(v []interface{}) *UserUpdateOne {
	_u.mutation.SetTaskList(v)
	return _u
}

// AppendTaskList appends value to the "task_list" field.
func (_u *UserUpdateOne) AppendTaskList(v []interface{}) *UserUpdateOne {
	_u.mutation.AppendTaskList(v)
	return _u
}

// ClearTaskList clears the value of the "task_list" field.
func (_u *UserUpdateOne) ClearTaskList() *UserUpdateOne {
	_u.mutation.ClearTaskList()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *UserUpdateOne) AddMessageIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *UserUpdateOne) AddMessages(v ...*Message) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by IDs.
func (_u *UserUpdateOne) AddTranscriptIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddTranscriptIDs(ids...)
	return _u
}

// AddTranscripts adds the "transcripts" edges to the Transcript entity.
func (_u *UserUpdateOne) AddTranscripts(v ...*Transcript) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTranscriptIDs(ids...)
}

// AddDerivedNoteIDs adds the "derived_notes" edge to the DerivedNote entity by IDs.
func (_u *UserUpdateOne) AddDerivedNoteIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddDerivedNoteIDs(ids...)
	return _u
}

// AddDerivedNotes adds the "derived_notes" edges to the DerivedNote entity.
func (_u *UserUpdateOne) AddDerivedNotes(v ...*DerivedNote) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDerivedNoteIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *UserUpdateOne) ClearMessages() *UserUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *UserUpdateOne) RemoveMessageIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *UserUpdateOne) RemoveMessages(v ...*Message) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearTranscripts clears all "transcripts" edges to the Transcript entity.
func (_u *UserUpdateOne) ClearTranscripts() *UserUpdateOne {
	_u.mutation.ClearTranscripts()
	return _u
}

// RemoveTranscriptIDs removes the "transcripts" edge to Transcript entities by IDs.
func (_u *UserUpdateOne) RemoveTranscriptIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveTranscriptIDs(ids...)
	return _u
}

// RemoveTranscripts removes "transcripts" edges to Transcript entities.
func (_u *UserUpdateOne) RemoveTranscripts(v ...*Transcript) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTranscriptIDs(ids...)
}

// ClearDerivedNotes clears all "derived_notes" edges to the DerivedNote entity.
func (_u *UserUpdateOne) ClearDerivedNotes() *UserUpdateOne {
	_u.mutation.ClearDerivedNotes()
	return _u
}

// RemoveDerivedNoteIDs removes the "derived_notes" edge to DerivedNote entities by IDs.
func (_u *UserUpdateOne) RemoveDerivedNoteIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveDerivedNoteIDs(ids...)
	return _u
}

// RemoveDerivedNotes removes "derived_notes" edges to DerivedNote entities.
func (_u *UserUpdateOne) RemoveDerivedNotes(v ...*DerivedNote) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDerivedNoteIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := user.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "User.current_stage": %w`, err)}
		}
	}
	if _u.mutation.BotCleared() && len(_u.mutation.BotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "User.bot"`)
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.BasicInfo(); ok {
		_spec.SetField(user.FieldBasicInfo, field.TypeJSON, value)
	}
	if _u.mutation.BasicInfoCleared() {
		_spec.ClearField(user.FieldBasicInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(user.FieldCurrentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Dimensions(); ok {
		_spec.SetField(user.FieldDimensions, field.TypeJSON, value)
	}
	if _u.mutation.DimensionsCleared() {
		_spec.ClearField(user.FieldDimensions, field.TypeJSON)
	}
	if value, ok := _u.mutation.InferredProfile(); ok {
		_spec.SetField(user.FieldInferredProfile, field.TypeJSON, value)
	}
	if _u.mutation.InferredProfileCleared() {
		_spec.ClearField(user.FieldInferredProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Assets(); ok {
		_spec.SetField(user.FieldAssets, field.TypeJSON, value)
	}
	if _u.mutation.AssetsCleared() {
		_spec.ClearField(user.FieldAssets, field.TypeJSON)
	}
	if value, ok := _u.mutation.SptInfo(); ok {
		_spec.SetField(user.FieldSptInfo, field.TypeJSON, value)
	}
	if _u.mutation.SptInfoCleared() {
		_spec.ClearField(user.FieldSptInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConversationSummary(); ok {
		_spec.SetField(user.FieldConversationSummary, field.TypeString, value)
	}
	if _u.mutation.ConversationSummaryCleared() {
		_spec.ClearField(user.FieldConversationSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UrgentTasks(); ok {
		_spec.SetField(user.FieldUrgentTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUrgentTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldUrgentTasks, value)
		})
	}
	if _u.mutation.UrgentTasksCleared() {
		_spec.ClearField(user.FieldUrgentTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskList(); ok {
		_spec.SetField(user.FieldTaskList, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskList(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldTaskList, value)
		})
	}
	if _u.mutation.TaskListCleared() {
		_spec.ClearField(user.FieldTaskList, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.MessagesTable,
			Columns: []string{user.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.MessagesTable,
			Columns: []string{user.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.MessagesTable,
			Columns: []string{user.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranscriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TranscriptsTable,
			Columns: []string{user.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTranscriptsIDs(); len(nodes) > 0 && !_u.mutation.TranscriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TranscriptsTable,
			Columns: []string{user.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TranscriptsTable,
			Columns: []string{user.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DerivedNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DerivedNotesTable,
			Columns: []string{user.DerivedNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDerivedNotesIDs(); len(nodes) > 0 && !_u.mutation.DerivedNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DerivedNotesTable,
			Columns: []string{user.DerivedNotesColumn},
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
	if nodes := _u.mutation.DerivedNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DerivedNotesTable,
			Columns: []string{user.DerivedNotesColumn},
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
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
