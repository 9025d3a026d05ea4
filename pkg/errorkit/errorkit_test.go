package errorkit_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/querykit/pkg/errorkit"
)

const ErrExample errorkit.Error = "example failure"

func ExampleError() {
	const ErrSomething errorkit.Error = "something is an error"

	_ = ErrSomething
}

func TestError(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("declarable as a constant and usable as an error value", func(t *testcase.T) {
		var err error = ErrExample
		assert.Equal(t, "example failure", err.Error())
	})

	s.Test("errors.Is matches the constant itself", func(t *testcase.T) {
		assert.True(t, errors.Is(ErrExample, ErrExample))
	})
}

func TestError_Wrap(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("wrapping nil returns the owner error itself", func(t *testcase.T) {
		assert.Equal[error](t, ErrExample, ErrExample.Wrap(nil))
	})

	s.Test("the wrapped error matches both the owner and the detail", func(t *testcase.T) {
		detail := t.Random.Error()
		err := ErrExample.Wrap(detail)
		assert.ErrorIs(t, err, ErrExample)
		assert.ErrorIs(t, err, detail)
	})

	s.Test("the message contains the owner and the detail", func(t *testcase.T) {
		err := ErrExample.Wrap(errors.New("boom"))
		assert.Equal(t, fmt.Sprintf("[%s] boom", ErrExample), err.Error())
	})
}

func TestError_F(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("formats the detail and keeps the owner matchable", func(t *testcase.T) {
		n := t.Random.Int()
		err := ErrExample.F("index %d", n)
		assert.ErrorIs(t, err, ErrExample)
		assert.Contain(t, err.Error(), fmt.Sprintf("index %d", n))
	})
}
