package xerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXCategory(t *testing.T) {
	assert.Equal(t, Normal.Name(), "normal")
	assert.Equal(t, Config.Name(), "config")
}

func TestXError_Error(t *testing.T) {
	errMsg := "test error"
	err := Errorf(Normal, errMsg)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerr.Error(), fmt.Sprintf("[%s] %s", Normal.Name(), errMsg))

	err = Wrap(err, Config, "wrapped error")
	assert.NotNil(t, err)

	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerr.Error(), fmt.Sprintf("[%s] %s", Normal.Name(), errMsg))
	assert.Contains(t, err.Error(), "wrapped error")
}

func TestErrorf(t *testing.T) {
	err := Errorf(Config, "rounds is negative: %d", -1)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), Config)
	assert.Equal(t, xerr.err.Error(), "rounds is negative: -1")
}

func TestWrapf(t *testing.T) {
	errMsg := "not a level: loud"
	err := errors.New(errMsg)
	wrappedErr := Wrapf(err, Config, "parse log level %s failed", "loud")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "parse log level loud failed: [config] not a level: loud", wrappedErr.Error())

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), Config)
	assert.Equal(t, xerr.err.Error(), errMsg)

	assert.Nil(t, Wrapf(nil, Config, "nothing"))
}

func TestIs(t *testing.T) {
	errNoRounds := NewWithoutStack(Config, "no rounds")
	wrappedErr := XWrapf(errNoRounds, "rounds: %d", 0)
	assert.NotNil(t, wrappedErr)

	assert.True(t, errors.Is(wrappedErr, errNoRounds))

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.Equal(t, xerr.Category(), Config)
}

func TestPanic(t *testing.T) {
	err := Panic(Normal, "test panic")
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
	assert.Equal(t, xerr.Category(), Normal)
	assert.Equal(t, xerr.err.Error(), "test panic")

	err = Panicf(Normal, "test %s", "panicf")
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
	assert.Equal(t, "Panic", xpanic.String())
}
