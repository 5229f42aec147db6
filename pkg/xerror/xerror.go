package xerror

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

type ErrorCategory interface {
	Name() string
}

var (
	Normal = newErrorCategory("normal")
	Config = newErrorCategory("config") // Invalid flags or options, the process can't start.
)

type xErrorCategory struct {
	name string
}

func (e xErrorCategory) Name() string {
	return e.name
}

func newErrorCategory(name string) ErrorCategory {
	return &xErrorCategory{
		name: name,
	}
}

type errType int

const (
	xrecoverable errType = iota
	xpanic
)

func (e errType) String() string {
	switch e {
	case xrecoverable:
		return "Recoverable"
	case xpanic:
		return "Panic"
	default:
		panic("unknown error level")
	}
}

// a wrapped error with error type
type XError struct {
	category ErrorCategory
	errType  errType
	err      error
}

func (e *XError) Category() ErrorCategory {
	return e.category
}

// return the innerest xerror message, without stack and wrap messages
func (e *XError) Error() string {
	var inner *XError
	if stderrors.As(e.err, &inner) {
		return inner.Error()
	}

	return fmt.Sprintf("[%s] %s", e.category.Name(), e.err.Error())
}

func (e *XError) Unwrap() error {
	return e.err
}

func (e *XError) IsRecoverable() bool {
	return e.errType == xrecoverable
}

func (e *XError) IsPanic() bool {
	return e.errType == xpanic
}

func NewWithoutStack(errCategory ErrorCategory, message string) *XError {
	return &XError{
		category: errCategory,
		errType:  xrecoverable,
		err:      stderrors.New(message),
	}
}

func New(errCategory ErrorCategory, message string) error {
	return errors.WithStack(NewWithoutStack(errCategory, message))
}

func Panic(errCategory ErrorCategory, message string) error {
	err := &XError{
		category: errCategory,
		errType:  xpanic,
		err:      stderrors.New(message),
	}
	return errors.WithStack(err)
}

func errorf(errCategory ErrorCategory, errtype errType, format string, args ...interface{}) *XError {
	return &XError{
		category: errCategory,
		errType:  errtype,
		err:      fmt.Errorf(format, args...),
	}
}

func Errorf(errCategory ErrorCategory, format string, args ...interface{}) error {
	return errors.WithStack(errorf(errCategory, xrecoverable, format, args...))
}

func Panicf(errCategory ErrorCategory, format string, args ...interface{}) error {
	return errors.WithStack(errorf(errCategory, xpanic, format, args...))
}

func wrapf(err error, errCategory ErrorCategory, errLevel errType, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	err = &XError{
		category: errCategory,
		errType:  errLevel,
		err:      err,
	}
	return errors.WithStack(errors.WithMessagef(err, format, args...))
}

func Wrap(err error, errCategory ErrorCategory, message string) error {
	return wrapf(err, errCategory, xrecoverable, "%s", message)
}

func Wrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	return wrapf(err, errCategory, xrecoverable, format, args...)
}

func XWrapf(xerr *XError, format string, args ...interface{}) error {
	return wrapf(xerr, xerr.category, xrecoverable, format, args...)
}
