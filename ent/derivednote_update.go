// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/predicate"
)

// DerivedNoteUpdate is the builder for updating DerivedNote entities.
type DerivedNoteUpdate struct {
	config
	hooks    []Hook
	mutation *DerivedNoteMutation
}

// Where appends a list predicates to the DerivedNoteUpdate builder.
func (_u *DerivedNoteUpdate) Where(ps ...predicate.DerivedNote) *DerivedNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNoteType sets the "note_type" field.
func (_u *DerivedNoteUpdate) SetNoteType(v derivednote.NoteType) *DerivedNoteUpdate {
	_u.mutation.SetNoteType(v)
	return _u
}

// SetNillableNoteType sets the "note_type" field if the given value is not nil.
func (_u *DerivedNoteUpdate) SetNillableNoteType(v *derivednote.NoteType) *DerivedNoteUpdate {
	if v != nil {
		_u.SetNoteType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DerivedNoteUpdate) SetContent(v string) *DerivedNoteUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DerivedNoteUpdate) SetNillableContent(v *string) *DerivedNoteUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetImportance sets the "importance" field.
func (_u *DerivedNoteUpdate) SetImportance(v float64) *DerivedNoteUpdate {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *DerivedNoteUpdate) SetNillableImportance(v *float64) *DerivedNoteUpdate {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *DerivedNoteUpdate) AddImportance(v float64) *DerivedNoteUpdate {
	_u.mutation.AddImportance(v)
	return _u
}

// Mutation returns the DerivedNoteMutation object of the builder.
func (_u *DerivedNoteUpdate) Mutation() *DerivedNoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DerivedNoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DerivedNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DerivedNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DerivedNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DerivedNoteUpdate) check() error {
	if v, ok := _u.mutation.NoteType(); ok {
		if err := derivednote.NoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "note_type", err: fmt.Errorf(`ent: validator failed for field "DerivedNote.note_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DerivedNote.user"`)
	}
	return nil
}

func (_u *DerivedNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(derivednote.Table, derivednote.Columns, sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NoteType(); ok {
		_spec.SetField(derivednote.FieldNoteType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(derivednote.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(derivednote.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(derivednote.FieldImportance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{derivednote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DerivedNoteUpdateOne is the builder for updating a single DerivedNote entity.
type DerivedNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DerivedNoteMutation
}

// SetNoteType sets the "note_type" field.
func (_u *DerivedNoteUpdateOne) SetNoteType(v derivednote.NoteType) *DerivedNoteUpdateOne {
	_u.mutation.SetNoteType(v)
	return _u
}

// SetNillableNoteType sets the "note_type" field if the given value is not nil.
func (_u *DerivedNoteUpdateOne) SetNillableNoteType(v *derivednote.NoteType) *DerivedNoteUpdateOne {
	if v != nil {
		_u.SetNoteType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DerivedNoteUpdateOne) SetContent(v string) *DerivedNoteUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DerivedNoteUpdateOne) SetNillableContent(v *string) *DerivedNoteUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetImportance sets the "importance" field.
func (_u *DerivedNoteUpdateOne) SetImportance(v float64) *DerivedNoteUpdateOne {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *DerivedNoteUpdateOne) SetNillableImportance(v *float64) *DerivedNoteUpdateOne {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *DerivedNoteUpdateOne) AddImportance(v float64) *DerivedNoteUpdateOne {
	_u.mutation.AddImportance(v)
	return _u
}

// Mutation returns the DerivedNoteMutation object of the builder.
func (_u *DerivedNoteUpdateOne) Mutation() *DerivedNoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the DerivedNoteUpdate builder.
func (_u *DerivedNoteUpdateOne) Where(ps ...predicate.DerivedNote) *DerivedNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DerivedNoteUpdateOne) Select(field string, fields ...string) *DerivedNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DerivedNote entity.
func (_u *DerivedNoteUpdateOne) Save(ctx context.Context) (*DerivedNote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DerivedNoteUpdateOne) SaveX(ctx context.Context) *DerivedNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DerivedNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DerivedNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DerivedNoteUpdateOne) check() error {
	if v, ok := _u.mutation.NoteType(); ok {
		if err := derivednote.NoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "note_type", err: fmt.Errorf(`ent: validator failed for field "DerivedNote.note_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DerivedNote.user"`)
	}
	return nil
}

func (_u *DerivedNoteUpdateOne) sqlSave(ctx context.Context) (_node *DerivedNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(derivednote.Table, derivednote.Columns, sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DerivedNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, derivednote.FieldID)
		for _, f := range fields {
			if !derivednote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != derivednote.FieldID {
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
	if value, ok := _u.mutation.NoteType(); ok {
		_spec.SetField(derivednote.FieldNoteType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(derivednote.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(derivednote.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(derivednote.FieldImportance, field.TypeFloat64, value)
	}
	_node = &DerivedNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{derivednote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
