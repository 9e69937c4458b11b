package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestFind(t *testing.T) {
	err := Wrap(&codedError{code: "NOT_FOUND_STORE"}, "lookup")

	found, ok := Find[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND_STORE", found.code)

	_, ok = Find[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestStack(t *testing.T) {
	assert.Empty(t, Stack(nil))
	assert.Empty(t, Stack(stderrors.New("no stack")))

	err := WithStack(stderrors.New("boom"))
	assert.Contains(t, Stack(err), "TestStack")

	wrapped := Wrap(err, "outer")
	assert.Equal(t, Stack(err), Stack(wrapped))
}
