// Package form binds a validator to a value and gates a submit action on the
// value being valid.
package form

import (
	"context"
	"errors"
	"fmt"

	"quote_desk/internal/domain/validation"
	"quote_desk/internal/infrastructure/notify"
)

// FormKey is the error key used when a validator fails with something other
// than field errors.
const FormKey = "form"

const (
	unknownValidationMessage = "unknown validation error"
	genericActionMessage     = "an unexpected error occurred"
)

// Patch is a partial update of T.
type Patch[T any] interface {
	Apply(*T)
}

// Form holds the working copy of a T, its field errors and the submitting
// flag. A Form is not safe for concurrent use.
type Form[T any] struct {
	data       T
	validate   func(T) error
	notifier   notify.Notifier
	errors     map[string]string
	submitting bool
}

func New[T any](validate func(T) error, notifier notify.Notifier, initial T) *Form[T] {
	return &Form[T]{
		data:     initial,
		validate: validate,
		notifier: notifier,
		errors:   map[string]string{},
	}
}

func (f *Form[T]) Data() T { return f.data }

// Errors returns a copy of the current path -> message mapping.
func (f *Form[T]) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form[T]) IsValid() bool      { return len(f.errors) == 0 }
func (f *Form[T]) IsSubmitting() bool { return f.submitting }

// SetData merges p into the current value. It does not validate.
func (f *Form[T]) SetData(p Patch[T]) {
	p.Apply(&f.data)
}

// Validate runs the validator on the current value. On failure every failing
// path gets one message; when a path fails several rules the last one wins.
func (f *Form[T]) Validate() bool {
	err := f.validate(f.data)
	if err == nil {
		f.errors = map[string]string{}
		return true
	}

	errs := map[string]string{}
	var ves validation.Errors
	if errors.As(err, &ves) && len(ves) > 0 {
		for _, fe := range ves {
			errs[fe.Key()] = fe.Message
		}
	} else {
		errs[FormKey] = unknownValidationMessage
	}
	f.errors = errs
	return false
}

// Submit validates and, when valid, runs action with the current value.
// Failures are reported through the notifier, never returned; the result
// tells whether the action ran and succeeded.
func (f *Form[T]) Submit(ctx context.Context, action func(context.Context, T) error) bool {
	if !f.Validate() {
		f.notify("Validation error", "please review the highlighted fields")
		return false
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	if err := call(ctx, action, f.data); err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericActionMessage
		}
		f.notify("Error", msg)
		return false
	}
	return true
}

func (f *Form[T]) notify(title, msg string) {
	if f.notifier == nil {
		return
	}
	f.notifier.Notify(notify.Notification{Title: title, Message: msg, Type: notify.TypeError})
}

func call[T any](ctx context.Context, action func(context.Context, T) error, data T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return action(ctx, data)
}
