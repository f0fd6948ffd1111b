package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	var v struct {
		Price Float `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 1299.5}`), &v))
	assert.Equal(t, Float(1299.5), v.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "499"}`), &v))
	assert.Equal(t, Float(499), v.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "not a number"}`), &v))
	assert.Equal(t, Float(0), v.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &v))
	assert.Equal(t, Float(0), v.Price)
}

func TestInt(t *testing.T) {
	var v struct {
		Qty Int `json:"qty"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"qty": "12"}`), &v))
	assert.Equal(t, Int(12), v.Qty)

	require.NoError(t, json.Unmarshal([]byte(`{"qty": 3.9}`), &v))
	assert.Equal(t, Int(3), v.Qty)

	require.NoError(t, json.Unmarshal([]byte(`{"qty": {}}`), &v))
	assert.Equal(t, Int(0), v.Qty)
}

func TestFlag(t *testing.T) {
	cases := []struct {
		in   string
		want Flag
	}{
		{`true`, 1},
		{`false`, 0},
		{`1`, 1},
		{`0`, 0},
		{`""`, 0},
		{`"on"`, 1},
		{`"false"`, 1}, // non-empty string is truthy, as the legacy API had it
		{`null`, 0},
	}
	for _, c := range cases {
		var v struct {
			F Flag `json:"f"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"f": `+c.in+`}`), &v))
		assert.Equal(t, c.want, v.F, "input %s", c.in)
	}
}

func TestStringArray(t *testing.T) {
	arr, ok := StringArray(json.RawMessage(`["S","M","L"]`))
	assert.True(t, ok)
	assert.Equal(t, []string{"S", "M", "L"}, arr)

	arr, ok = StringArray(json.RawMessage(`"[\"a.jpg\",\"b.jpg\"]"`))
	assert.True(t, ok)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, arr)

	arr, ok = StringArray(json.RawMessage(`"{broken"`))
	assert.False(t, ok)
	assert.Nil(t, arr)

	arr, ok = StringArray(nil)
	assert.True(t, ok)
	assert.Nil(t, arr)
}

func TestVariationMap(t *testing.T) {
	m, ok := VariationMap(json.RawMessage(`{"Color":["Red","Blue"]}`))
	assert.True(t, ok)
	assert.Equal(t, map[string][]string{"Color": {"Red", "Blue"}}, m)

	m, ok = VariationMap(json.RawMessage(`"{\"Size\":[\"S\"]}"`))
	assert.True(t, ok)
	assert.Equal(t, map[string][]string{"Size": {"S"}}, m)

	m, ok = VariationMap(json.RawMessage(`42`))
	assert.False(t, ok)
	assert.Nil(t, m)
}
