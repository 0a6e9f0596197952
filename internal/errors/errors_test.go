package errors

import (
	stderrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsTarget(t *testing.T) {
	err := Wrap(&codedError{code: "ORDER_NOT_FOUND"}, "failed to load order")

	got, ok := AsTarget[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "ORDER_NOT_FOUND", got.code)

	_, ok = AsTarget[*codedError](io.EOF)
	assert.False(t, ok)
}

func TestWithStack_KeepsExistingStack(t *testing.T) {
	wrapped := Wrap(io.EOF, "read")

	assert.Same(t, wrapped, WithStack(wrapped))
	assert.Nil(t, WithStack(nil))
	assert.True(t, Is(WithStack(io.EOF), io.EOF))
	assert.Contains(t, Stack(WithStack(io.EOF)), "TestWithStack_KeepsExistingStack")
}

func TestStack(t *testing.T) {
	assert.Empty(t, Stack(stderrors.New("plain")))
	assert.Empty(t, Stack(nil))
	assert.Contains(t, Stack(Wrap(io.EOF, "read")), "TestStack")
}
