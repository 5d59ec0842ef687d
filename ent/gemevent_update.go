// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/gemevent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/predicate"
)

// GemEventUpdate is the builder for updating GemEvent entities.
type GemEventUpdate struct {
	config
	hooks    []Hook
	mutation *GemEventMutation
}

// Where appends a list predicates to the GemEventUpdate builder.
func (_u *GemEventUpdate) Where(ps ...predicate.GemEvent) *GemEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGemType sets the "gem_type" field.
func (_u *GemEventUpdate) SetGemType(v gemevent.GemType) *GemEventUpdate {
	_u.mutation.SetGemType(v)
	return _u
}

// SetNillableGemType sets the "gem_type" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableGemType(v *gemevent.GemType) *GemEventUpdate {
	if v != nil {
		_u.SetGemType(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *GemEventUpdate) SetRarity(v gemevent.Rarity) *GemEventUpdate {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableRarity(v *gemevent.Rarity) *GemEventUpdate {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *GemEventUpdate) SetLanguage(v string) *GemEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableLanguage(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *GemEventUpdate) SetLessonTitle(v string) *GemEventUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableLessonTitle(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// ClearLessonTitle clears the value of the "lesson_title" field.
func (_u *GemEventUpdate) ClearLessonTitle() *GemEventUpdate {
	_u.mutation.ClearLessonTitle()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GemEventUpdate) SetSessionID(v string) *GemEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableSessionID(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *GemEventUpdate) SetReason(v string) *GemEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableReason(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the GemEventMutation object of the builder.
func (_u *GemEventUpdate) Mutation() *GemEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GemEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GemEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GemEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GemEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GemEventUpdate) check() error {
	if v, ok := _u.mutation.GemType(); ok {
		if err := gemevent.GemTypeValidator(v); err != nil {
			return &ValidationError{Name: "gem_type", err: fmt.Errorf(`ent: validator failed for field "GemEvent.gem_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := gemevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "GemEvent.rarity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gemevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GemEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := gemevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "GemEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *GemEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gemevent.Table, gemevent.Columns, sqlgraph.NewFieldSpec(gemevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GemType(); ok {
		_spec.SetField(gemevent.FieldGemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(gemevent.FieldRarity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(gemevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(gemevent.FieldLessonTitle, field.TypeString, value)
	}
	if _u.mutation.LessonTitleCleared() {
		_spec.ClearField(gemevent.FieldLessonTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gemevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(gemevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gemevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GemEventUpdateOne is the builder for updating a single GemEvent entity.
type GemEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GemEventMutation
}

// SetGemType sets the "gem_type" field.
func (_u *GemEventUpdateOne) SetGemType(v gemevent.GemType) *GemEventUpdateOne {
	_u.mutation.SetGemType(v)
	return _u
}

// SetNillableGemType sets the "gem_type" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableGemType(v *gemevent.GemType) *GemEventUpdateOne {
	if v != nil {
		_u.SetGemType(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *GemEventUpdateOne) SetRarity(v gemevent.Rarity) *GemEventUpdateOne {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableRarity(v *gemevent.Rarity) *GemEventUpdateOne {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *GemEventUpdateOne) SetLanguage(v string) *GemEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableLanguage(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *GemEventUpdateOne) SetLessonTitle(v string) *GemEventUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableLessonTitle(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// ClearLessonTitle clears the value of the "lesson_title" field.
func (_u *GemEventUpdateOne) ClearLessonTitle() *GemEventUpdateOne {
	_u.mutation.ClearLessonTitle()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GemEventUpdateOne) SetSessionID(v string) *GemEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableSessionID(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *GemEventUpdateOne) SetReason(v string) *GemEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableReason(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the GemEventMutation object of the builder.
func (_u *GemEventUpdateOne) Mutation() *GemEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GemEventUpdate builder.
func (_u *GemEventUpdateOne) Where(ps ...predicate.GemEvent) *GemEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GemEventUpdateOne) Select(field string, fields ...string) *GemEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GemEvent entity.
func (_u *GemEventUpdateOne) Save(ctx context.Context) (*GemEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GemEventUpdateOne) SaveX(ctx context.Context) *GemEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GemEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GemEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GemEventUpdateOne) check() error {
	if v, ok := _u.mutation.GemType(); ok {
		if err := gemevent.GemTypeValidator(v); err != nil {
			return &ValidationError{Name: "gem_type", err: fmt.Errorf(`ent: validator failed for field "GemEvent.gem_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := gemevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "GemEvent.rarity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gemevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GemEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := gemevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "GemEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *GemEventUpdateOne) sqlSave(ctx context.Context) (_node *GemEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gemevent.Table, gemevent.Columns, sqlgraph.NewFieldSpec(gemevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GemEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gemevent.FieldID)
		for _, f := range fields {
			if !gemevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gemevent.FieldID {
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
	if value, ok := _u.mutation.GemType(); ok {
		_spec.SetField(gemevent.FieldGemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(gemevent.FieldRarity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(gemevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(gemevent.FieldLessonTitle, field.TypeString, value)
	}
	if _u.mutation.LessonTitleCleared() {
		_spec.ClearField(gemevent.FieldLessonTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gemevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(gemevent.FieldReason, field.TypeString, value)
	}
	_node = &GemEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gemevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
