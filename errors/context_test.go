package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, WithContext(nil, "k", "v"))
		assert.Nil(t, WithContextMap(nil, map[string]interface{}{"k": "v"}))
	})

	t.Run("accumulates fields", func(t *testing.T) {
		err := New(CodeNotFound, "File not found")
		err = WithContext(err, "path", `\A.TXT`)
		err = WithContext(err, "command", "TYPE")

		ctx := err.Context()
		require.Len(t, ctx, 2)
		assert.Equal(t, `\A.TXT`, ctx["path"])
		assert.Equal(t, "TYPE", ctx["command"])
		assert.Equal(t, CodeNotFound, err.Code())
	})

	t.Run("overrides existing keys", func(t *testing.T) {
		err := WithContext(New(CodeNotFound, "x"), "path", "old")
		err = WithContextMap(err, map[string]interface{}{"path": "new"})
		assert.Equal(t, "new", err.Context()["path"])
	})

	t.Run("converts plain errors", func(t *testing.T) {
		cause := errors.New("plain")
		err := WithContext(cause, "k", 1)

		assert.Equal(t, CodeUnknown, err.Code())
		assert.Equal(t, "plain", err.Message())
		assert.True(t, errors.Is(err, cause))
	})
}

func TestWithClassification(t *testing.T) {
	assert.Nil(t, WithClassification(nil, ClassificationFatal))

	err := WithClassification(New(CodeAlreadyExists, "File already exists"), ClassificationFatal)
	assert.Equal(t, CodeAlreadyExists, err.Code())
	assert.True(t, err.Classification().IsFatal())

	plain := WithClassification(errors.New("plain"), ClassificationFatal)
	assert.Equal(t, CodeUnknown, plain.Code())
	assert.True(t, plain.Classification().IsFatal())
}
