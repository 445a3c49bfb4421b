package alps

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue(t *testing.T) {
	n := NumberValue(0)
	assert.True(t, n.Known())
	assert.Equal(t, "0", n.String())
	i, ok := n.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(0), i)

	s := StringValue("GPU")
	assert.True(t, s.Known())
	assert.Equal(t, "GPU", s.String())
	_, ok = s.Int()
	assert.False(t, ok)

	assert.False(t, Unknown.Known())
	assert.Equal(t, "unknown", Unknown.String())
	assert.NotEqual(t, NumberValue(0), Unknown)
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Value{
		"depth": NumberValue(4),
		"accel": StringValue("KNC"),
		"width": Unknown,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"depth":4,"accel":"KNC","width":null}`, string(data))
}

func TestValueYAML(t *testing.T) {
	data, err := yaml.Marshal(map[string]Value{
		"depth": NumberValue(4),
		"width": Unknown,
	})
	require.NoError(t, err)
	assert.Equal(t, "depth: 4\nwidth: null\n", string(data))
}
