package collection

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_SetKeepsInsertionOrder(t *testing.T) {
	c := New[string]()
	c.Set("b", "2")
	c.Set("a", "1")
	c.Set("c", "3")
	c.Set("a", "one") // replace in place

	assert.Equal(t, []string{"b", "a", "c"}, c.IDs())
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, []string{"2", "one", "3"}, slices.Collect(c.Values()))
}

func TestCollection_Delete(t *testing.T) {
	c := New[int]()
	c.Set("x", 1)
	c.Set("y", 2)

	assert.True(t, c.Delete("x"))
	assert.False(t, c.Delete("x"))
	assert.False(t, c.Has("x"))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"y"}, c.IDs())
}

func TestCollection_NilReceiver(t *testing.T) {
	var c *Collection[int]
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Has("a"))
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(c.Values()))
}

func TestCollection_CloneIsIndependent(t *testing.T) {
	c := New[[]string]()
	c.Set("s1", []string{"10"})

	deep := c.Clone(slices.Clone[[]string])
	deep.Set("s2", nil)
	v, _ := deep.Get("s1")
	v[0] = "11"

	assert.Equal(t, 1, c.Len())
	orig, _ := c.Get("s1")
	assert.Equal(t, []string{"10"}, orig)
}

func TestCollection_JSONRoundTripKeepsOrder(t *testing.T) {
	raw := []byte(`{"9": {"n": 1}, "1": {"n": 2}, "5": {"n": 3}}`)

	type rec struct {
		N int `json:"n"`
	}
	c := New[rec]()
	require.NoError(t, json.Unmarshal(raw, c))
	assert.Equal(t, []string{"9", "1", "5"}, c.IDs())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
	assert.Equal(t, `{"9":{"n":1},"1":{"n":2},"5":{"n":3}}`, string(out))
}

func TestCollection_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantIDs []string
		wantErr bool
	}{
		{name: "null", raw: `null`, wantIDs: nil},
		{name: "empty object", raw: `{}`, wantIDs: nil},
		{name: "nested", raw: `{"a": {"x": 1}, "b": {}}`, wantIDs: []string{"a", "b"}},
		{name: "array", raw: `[1, 2]`, wantErr: true},
		{name: "truncated", raw: `{"a": {"x": 1}`, wantErr: true},
		{name: "bad value", raw: `{"a": "nope"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[map[string]int]()
			err := json.Unmarshal([]byte(tt.raw), c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, c.IDs())
		})
	}
}
