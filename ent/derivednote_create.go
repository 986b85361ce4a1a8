// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/transcript"
	"github.com/rapport-chat/rapport/ent/user"
)

// DerivedNoteCreate is the builder for creating a DerivedNote entity.
type DerivedNoteCreate struct {
	config
	mutation *DerivedNoteMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DerivedNoteCreate) SetUserID(v string) *DerivedNoteCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTranscriptID sets the "transcript_id" field.
func (_c *DerivedNoteCreate) SetTranscriptID(v string) *DerivedNoteCreate {
	_c.mutation.SetTranscriptID(v)
	return _c
}

// SetNillableTranscriptID sets the "transcript_id" field if the given value is not nil.
func (_c *DerivedNoteCreate) SetNillableTranscriptID(v *string) *DerivedNoteCreate {
	if v != nil {
		_c.SetTranscriptID(*v)
	}
	return _c
}

// SetNoteType sets the "note_type" field.
func (_c *DerivedNoteCreate) SetNoteType(v derivednote.NoteType) *DerivedNoteCreate {
	_c.mutation.SetNoteType(v)
	return _c
}

// SetNillableNoteType sets the "note_type" field if the given value is not nil.
func (_c *DerivedNoteCreate) SetNillableNoteType(v *derivednote.NoteType) *DerivedNoteCreate {
	if v != nil {
		_c.SetNoteType(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *DerivedNoteCreate) SetContent(v string) *DerivedNoteCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetImportance sets the "importance" field.
func (_c *DerivedNoteCreate) SetImportance(v float64) *DerivedNoteCreate {
	_c.mutation.SetImportance(v)
	return _c
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_c *DerivedNoteCreate) SetNillableImportance(v *float64) *DerivedNoteCreate {
	if v != nil {
		_c.SetImportance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DerivedNoteCreate) SetCreatedAt(v time.Time) *DerivedNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DerivedNoteCreate) SetNillableCreatedAt(v *time.Time) *DerivedNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DerivedNoteCreate) SetID(v string) *DerivedNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DerivedNoteCreate) SetUser(v *User) *DerivedNoteCreate {
	return _c.SetUserID(v.ID)
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_c *DerivedNoteCreate) SetTranscript(v *Transcript) *DerivedNoteCreate {
	return _c.SetTranscriptID(v.ID)
}

// Mutation returns the DerivedNoteMutation object of the builder.
func (_c *DerivedNoteCreate) Mutation() *DerivedNoteMutation {
	return _c.mutation
}

// Save creates the DerivedNote in the database.
func (_c *DerivedNoteCreate) Save(ctx context.Context) (*DerivedNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DerivedNoteCreate) SaveX(ctx context.Context) *DerivedNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DerivedNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DerivedNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DerivedNoteCreate) defaults() {
	if _, ok := _c.mutation.NoteType(); !ok {
		v := derivednote.DefaultNoteType
		_c.mutation.SetNoteType(v)
	}
	if _, ok := _c.mutation.Importance(); !ok {
		v := derivednote.DefaultImportance
		_c.mutation.SetImportance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := derivednote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DerivedNoteCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DerivedNote.user_id"`)}
	}
	if _, ok := _c.mutation.NoteType(); !ok {
		return &ValidationError{Name: "note_type", err: errors.New(`ent: missing required field "DerivedNote.note_type"`)}
	}
	if v, ok := _c.mutation.NoteType(); ok {
		if err := derivednote.NoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "note_type", err: fmt.Errorf(`ent: validator failed for field "DerivedNote.note_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DerivedNote.content"`)}
	}
	if _, ok := _c.mutation.Importance(); !ok {
		return &ValidationError{Name: "importance", err: errors.New(`ent: missing required field "DerivedNote.importance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DerivedNote.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "DerivedNote.user"`)}
	}
	return nil
}

func (_c *DerivedNoteCreate) sqlSave(ctx context.Context) (*DerivedNote, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DerivedNote.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DerivedNoteCreate) createSpec() (*DerivedNote, *sqlgraph.CreateSpec) {
	var (
		_node = &DerivedNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(derivednote.Table, sqlgraph.NewFieldSpec(derivednote.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NoteType(); ok {
		_spec.SetField(derivednote.FieldNoteType, field.TypeEnum, value)
		_node.NoteType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(derivednote.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Importance(); ok {
		_spec.SetField(derivednote.FieldImportance, field.TypeFloat64, value)
		_node.Importance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(derivednote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   derivednote.UserTable,
			Columns: []string{derivednote.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TranscriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   derivednote.TranscriptTable,
			Columns: []string{derivednote.TranscriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TranscriptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DerivedNoteCreateBulk is the builder for creating many DerivedNote entities in bulk.
type DerivedNoteCreateBulk struct {
	config
	err      error
	builders []*DerivedNoteCreate
}

// Save creates the DerivedNote entities in the database.
func (_c *DerivedNoteCreateBulk) Save(ctx context.Context) ([]*DerivedNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DerivedNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DerivedNoteMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DerivedNoteCreateBulk) SaveX(ctx context.Context) []*DerivedNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DerivedNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DerivedNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
