package result

import (
	"errors"
	"testing"

	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	r := Success([]string{"a", "b"})

	require.True(t, r.IsSuccess())
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Nil(t, r.Err())

	got, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFailure(t *testing.T) {
	r := Failure[int](apperrors.ResponseError("http://x", 500))

	assert.False(t, r.IsSuccess())
	v, ok := r.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, apperrors.ErrCodeResponse, r.Err().Code)

	_, err := r.Get()
	assert.ErrorIs(t, err, apperrors.ErrResponse)
}

func TestFailure_PlainErrorGetsCode(t *testing.T) {
	r := Failure[string](errors.New("boom"))

	require.NotNil(t, r.Err())
	assert.Equal(t, apperrors.ErrCodeInternal, r.Err().Code)
}

func TestFailure_NilErrorStillFails(t *testing.T) {
	r := Failure[string](nil)

	assert.False(t, r.IsSuccess())
	assert.NotNil(t, r.Err())
}
