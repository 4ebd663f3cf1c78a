package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidConfig, "bad options")

	assert.Equal(t, CodeInvalidConfig, err.Code)
	assert.Equal(t, "INVALID_CONFIGURATION: bad options", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
		assert.Nil(t, WrapWithContext(nil, CodeInternal, "ignored", nil))
	})

	t.Run("cause is preserved", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := Wrap(cause, CodeInternal, "rule panicked")

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "INTERNAL_ERROR: rule panicked: boom", err.Error())
	})

	t.Run("context is copied", func(t *testing.T) {
		meta := map[string]interface{}{"rule": "jsx/no-missing-key"}
		err := WrapWithContext(stderrors.New("x"), CodeInvalidConfig, "failed", meta)
		meta["rule"] = "changed"

		var coded *Error
		require.True(t, As(err, &coded))
		assert.Equal(t, "jsx/no-missing-key", coded.Context["rule"])
	})
}

func TestGetCodeAndHasCode(t *testing.T) {
	inner := New(CodeSchemaFailed, "schema")
	outer := Wrap(inner, CodeInvalidConfig, "options")
	plain := fmt.Errorf("context: %w", outer)

	assert.Equal(t, CodeInvalidConfig, GetCode(plain))
	assert.True(t, HasCode(plain, CodeInvalidConfig))
	assert.True(t, HasCode(plain, CodeSchemaFailed))
	assert.False(t, HasCode(plain, CodeTraversal))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.False(t, HasCode(nil, CodeInternal))
}

func TestErrorIsComparesCodes(t *testing.T) {
	sentinel := New(CodeTraversal, "")
	err := Wrap(stderrors.New("cycle"), CodeTraversal, "tree")

	assert.ErrorIs(t, err, sentinel)
	assert.NotErrorIs(t, err, New(CodeInternal, ""))
}

func TestWithContext(t *testing.T) {
	base := New(CodeNotFound, "rule not found")
	withRule := base.WithContext("rule", "x")

	assert.Nil(t, base.Context)
	assert.Equal(t, "x", withRule.Context["rule"])
}
