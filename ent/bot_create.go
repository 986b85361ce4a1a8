// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rapport-chat/rapport/ent/bot"
	"github.com/rapport-chat/rapport/ent/user"
)

// BotCreate is the builder for creating a Bot entity.
type BotCreate struct {
	config
	mutation *BotMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *BotCreate) SetName(v string) *BotCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetBasicInfo sets the "basic_info" field.
func (_c *BotCreate) SetBasicInfo(v map[string]interface{}) *BotCreate {
	_c.mutation.SetBasicInfo(v)
	return _c
}

// SetBigFive sets the "big_five" field.
func (_c *BotCreate) SetBigFive(v map[string]float64) *BotCreate {
	_c.mutation.SetBigFive(v)
	return _c
}

// SetPersona sets the "persona" field.
func (_c *BotCreate) SetPersona(v map[string]interface{}) *BotCreate {
	_c.mutation.SetPersona(v)
	return _c
}

// SetMoodState sets the "mood_state" field.
func (_c *BotCreate) SetMoodState(v map[string]interface{}) *BotCreate {
	_c.mutation.SetMoodState(v)
	return _c
}

// SetUrgentTasks sets the "urgent_tasks" field.
func (_c *BotCreate) SetUrgentTasks(v []interface{}) *BotCreate {
	_c.mutation.SetUrgentTasks(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BotCreate) SetCreatedAt(v time.Time) *BotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BotCreate) SetNillableCreatedAt(v *time.Time) *BotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BotCreate) SetUpdatedAt(v time.Time) *BotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BotCreate) SetNillableUpdatedAt(v *time.Time) *BotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BotCreate) SetID(v string) *BotCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_c *BotCreate) AddUserIDs(ids ...string) *BotCreate {
	_c.mutation.AddUserIDs(ids...)
	return _c
}

// AddUsers adds the "users" edges to the User entity.
func (_c *BotCreate) AddUsers(v ...*User) *BotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserIDs(ids...)
}

// Mutation returns the BotMutation object of the builder.
func (_c *BotCreate) Mutation() *BotMutation {
	return _c.mutation
}

// Save creates the Bot in the database.
func (_c *BotCreate) Save(ctx context.Context) (*Bot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotCreate) SaveX(ctx context.Context) *Bot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Bot.name"`)}
	}
	if _, ok := _c.mutation.BasicInfo(); !ok {
		return &ValidationError{Name: "basic_info", err: errors.New(`ent: missing required field "Bot.basic_info"`)}
	}
	if _, ok := _c.mutation.BigFive(); !ok {
		return &ValidationError{Name: "big_five", err: errors.New(`ent: missing required field "Bot.big_five"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bot.updated_at"`)}
	}
	return nil
}

func (_c *BotCreate) sqlSave(ctx context.Context) (*Bot, error) {
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
			return nil, fmt.Errorf("unexpected Bot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BotCreate) createSpec() (*Bot, *sqlgraph.CreateSpec) {
	var (
		_node = &Bot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bot.Table, sqlgraph.NewFieldSpec(bot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(bot.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.BasicInfo(); ok {
		_spec.SetField(bot.FieldBasicInfo, field.TypeJSON, value)
		_node.BasicInfo = value
	}
	if value, ok := _c.mutation.BigFive(); ok {
		_spec.SetField(bot.FieldBigFive, field.TypeJSON, value)
		_node.BigFive = value
	}
	if value, ok := _c.mutation.Persona(); ok {
		_spec.SetField(bot.FieldPersona, field.TypeJSON, value)
		_node.Persona = value
	}
	if value, ok := _c.mutation.MoodState(); ok {
		_spec.SetField(bot.FieldMoodState, field.TypeJSON, value)
		_node.MoodState = value
	}
	if value, ok := _c.mutation.UrgentTasks(); ok {
		_spec.SetField(bot.FieldUrgentTasks, field.TypeJSON, value)
		_node.UrgentTasks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UsersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BotCreateBulk is the builder for creating many Bot entities in bulk.
type BotCreateBulk struct {
	config
	err      error
	builders []*BotCreate
}

// Save creates the Bot entities in the database.
func (_c *BotCreateBulk) Save(ctx context.Context) ([]*Bot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotMutation)
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
func (_c *BotCreateBulk) SaveX(ctx context.Context) []*Bot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
