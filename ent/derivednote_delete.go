// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/predicate"
)

// DerivedNoteDelete is the builder for deleting a DerivedNote entity.
type DerivedNoteDelete struct {
	config
	hooks    []Hook
	mutation *DerivedNoteMutation
}

// Where appends a list predicates to the DerivedNoteDelete builder.
func (_d *DerivedNoteDelete) Where(ps ...predicate.DerivedNote) *DerivedNoteDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DerivedNoteDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DerivedNoteDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DerivedNoteDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(derivednote.Table, sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DerivedNoteDeleteOne is the builder for deleting a single DerivedNote entity.
type DerivedNoteDeleteOne struct {
	_d *DerivedNoteDelete
}

// Where appends a list predicates to the DerivedNoteDelete builder.
func (_d *DerivedNoteDeleteOne) Where(ps ...predicate.DerivedNote) *DerivedNoteDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DerivedNoteDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{derivednote.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DerivedNoteDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
