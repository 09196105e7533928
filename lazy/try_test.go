package lazy_test

import (
	"errors"
	"testing"

	"github.com/BlueGhostGH/moonad/lazy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("broken")

func TestTryGet_MemoizesSuccess(t *testing.T) {
	count := 0
	cell := lazy.NewTry(func() (int, error) {
		count++
		return 42, nil
	})

	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = cell.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, count)
}

func TestTryGet_ErrorIsNotCached(t *testing.T) {
	count := 0
	cell := lazy.NewTry(func() (string, error) {
		count++
		if count == 1 {
			return "", errBroken
		}
		return "recovered", nil
	})

	_, err := cell.Get()
	assert.ErrorIs(t, err, errBroken)
	assert.False(t, cell.Forced(), "failed force must not mark the cell evaluated")

	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, 2, count)
	assert.True(t, cell.Forced())
}

func TestTryGet_ErrorPropagatesUnwrapped(t *testing.T) {
	cell := lazy.NewTry(func() (int, error) {
		return 0, errBroken
	})

	_, err := cell.Get()
	assert.Equal(t, errBroken, err)
}

func TestTryFromValue_NeverFails(t *testing.T) {
	cell := lazy.TryFromValue(7)

	assert.True(t, cell.Forced())
	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestNewTryRetry_SucceedsWithinBudget(t *testing.T) {
	count := 0
	cell := lazy.NewTryRetry(func() (int, error) {
		count++
		if count < 3 {
			return 0, errBroken
		}
		return 42, nil
	}, 5)

	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 3, count)
}

func TestNewTryRetry_ExhaustsBudget(t *testing.T) {
	count := 0
	cell := lazy.NewTryRetry(func() (int, error) {
		count++
		return 0, errBroken
	}, 3)

	_, err := cell.Get()
	assert.ErrorIs(t, err, lazy.ErrMaxAttempts)
	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, 3, count)

	// A later force gets a fresh budget.
	_, err = cell.Get()
	assert.ErrorIs(t, err, lazy.ErrMaxAttempts)
	assert.Equal(t, 6, count)
}

func TestTryMap_ShortCircuitsOnError(t *testing.T) {
	mapCount := 0
	cell := lazy.TryMap(
		lazy.NewTry(func() (int, error) { return 0, errBroken }),
		func(n int) (string, error) {
			mapCount++
			return "unreachable", nil
		},
	)

	_, err := cell.Get()
	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, 0, mapCount)
}

func TestTryMap_ChainsSuccess(t *testing.T) {
	cell := lazy.TryMap(
		lazy.TryFromValue(21),
		func(n int) (int, error) { return n * 2, nil },
	)

	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestMust_PanicsOnError(t *testing.T) {
	cell := lazy.Must(lazy.NewTry(func() (int, error) {
		return 0, errBroken
	}))

	assert.PanicsWithValue(t, errBroken, func() {
		_ = cell.Get()
	})
	assert.False(t, cell.Forced(), "panicking bridge leaves the cell retryable")
}

func TestMust_PassesThroughSuccess(t *testing.T) {
	cell := lazy.Must(lazy.TryFromValue("ok"))

	assert.Equal(t, "ok", cell.Get())
}
