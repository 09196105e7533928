package lazy_test

import (
	"encoding/json"
	"testing"

	"github.com/BlueGhostGH/moonad/lazy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_Forces(t *testing.T) {
	count := 0
	cell := lazy.New(func() int {
		count++
		return 42
	})

	assert.Equal(t, "42", cell.String())
	assert.Equal(t, "42", cell.String())
	assert.Equal(t, 1, count)
}

func TestExport_AlwaysEvaluatedShape(t *testing.T) {
	count := 0
	cell := lazy.New(func() string {
		count++
		return "computed"
	})

	snap := cell.Export()
	assert.True(t, snap.Evaluated)
	assert.Equal(t, "computed", snap.Value)
	assert.Equal(t, 1, count, "export forces exactly once")
	assert.True(t, cell.Forced())
}

func TestMarshalJSON_ForcesFirst(t *testing.T) {
	cell := lazy.New(func() int { return 6 })

	data, err := json.Marshal(cell)
	require.NoError(t, err)
	assert.JSONEq(t, `{"evaluated":true,"value":6}`, string(data))
	assert.True(t, cell.Forced())
}

func TestUnmarshalJSON_RoundTrip(t *testing.T) {
	src := lazy.New(func() []int { return []int{1, 2, 3} })
	data, err := json.Marshal(src)
	require.NoError(t, err)

	dst := lazy.FromValue[[]int](nil)
	require.NoError(t, json.Unmarshal(data, dst))
	assert.True(t, dst.Forced())
	assert.Equal(t, []int{1, 2, 3}, dst.Get())
}

func TestUnmarshalJSON_RejectsUnevaluatedShape(t *testing.T) {
	dst := lazy.FromValue(0)
	err := json.Unmarshal([]byte(`{"evaluated":false,"value":0}`), dst)

	require.Error(t, err)
	assert.ErrorIs(t, err, lazy.ErrUnevaluatedSnapshot)
}
