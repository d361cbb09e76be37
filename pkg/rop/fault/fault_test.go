package fault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatch_ReturnsResults(t *testing.T) {
	t.Parallel()
	issue := errors.New("plain")

	v, err := Catch(func() (int, error) { return 1, nil })
	assert.Equal(t, 1, v)
	assert.NoError(t, err)

	_, err = Catch(func() (int, error) { return 0, issue })
	assert.Same(t, issue, err)
	assert.False(t, IsPanic(err))
}

func TestCatch_RecoversPanic(t *testing.T) {
	t.Parallel()

	v, err := Catch(func() (int, error) { panic("boom") })
	assert.Zero(t, v)
	require.True(t, IsPanic(err))
	assert.EqualError(t, err, "panic: boom")

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "boom", pe.Value)
	assert.NotEmpty(t, pe.Stack)
}

func TestCatch_PanicWithErrorUnwraps(t *testing.T) {
	t.Parallel()
	issue := errors.New("range")

	_, err := Catch(func() (string, error) {
		Crash(issue)
		return "", nil
	})
	assert.True(t, IsPanic(err))
	assert.ErrorIs(t, err, issue)
}

func TestCrash_FormatsNonErrors(t *testing.T) {
	t.Parallel()
	assert.PanicsWithError(t, "42", func() { Crash(42) })
}
