package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twiglang/twig/value"
)

func TestClock_RejectsArguments(t *testing.T) {
	clock := Builtins[0]
	require.Equal(t, "clock", clock.Name)
	_, err := clock.Fn([]value.Value{value.Number{Value: 1}})
	assert.Error(t, err)
}

func TestClock_ReturnsNumber(t *testing.T) {
	clock := Builtins[0]
	v, err := clock.Fn(nil)
	require.NoError(t, err)
	n, ok := v.(value.Number)
	require.True(t, ok)
	assert.Greater(t, n.Value, float64(0))
}

func TestInstall_DefinesEveryBuiltin(t *testing.T) {
	defined := map[string]value.Value{}
	Install(func(name string, v value.Value) { defined[name] = v })
	_, ok := defined["clock"]
	assert.True(t, ok)
}
