package conv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsText(t *testing.T) {
	testCases := []struct {
		description string
		value       any
		expect      string
	}{
		{description: "string", value: "cats", expect: "cats"},
		{description: "integer", value: json.Number("42"), expect: "42"},
		{description: "negative integer", value: json.Number("-7"), expect: "-7"},
		{description: "large unsigned", value: json.Number("18446744073709551615"), expect: "18446744073709551615"},
		{description: "fraction", value: json.Number("1.5"), expect: "1.5"},
		{description: "integral float", value: json.Number("2.0"), expect: "2.0"},
		{description: "exponent", value: json.Number("1e3"), expect: "1000.0"},
		{description: "upper exponent", value: json.Number("1E3"), expect: "1000.0"},
		{description: "trailing zero", value: json.Number("1.50"), expect: "1.5"},
		{description: "large exponent", value: json.Number("1e21"), expect: "1e21"},
		{description: "sixteen digits", value: json.Number("1e15"), expect: "1000000000000000.0"},
		{description: "seventeen digits", value: json.Number("1e16"), expect: "1e16"},
		{description: "beyond uint64", value: json.Number("18446744073709551616"), expect: "1.8446744073709552e19"},
		{description: "small fraction", value: json.Number("0.001"), expect: "0.001"},
		{description: "tiny", value: json.Number("1e-7"), expect: "1e-7"},
		{description: "negative fraction", value: json.Number("-2.50"), expect: "-2.5"},
		{description: "float64", value: 3.0, expect: "3.0"},
		{description: "bool true", value: true, expect: "true"},
		{description: "bool false", value: false, expect: "false"},
		{description: "null", value: nil, expect: "null"},
		{description: "array", value: []any{json.Number("1"), "a"}, expect: `[1,"a"]`},
		{description: "object sorted keys", value: map[string]any{"b": "<x>", "a": true}, expect: `{"a":true,"b":"<x>"}`},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, AsText(testCase.value), testCase.description)
	}
}

func TestDecode(t *testing.T) {
	value, err := Decode([]byte(` {"n": 10, "f": 1.25} `))
	if !assert.Nil(t, err) {
		return
	}
	object, ok := value.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, json.Number("10"), object["n"])
	assert.Equal(t, json.Number("1.25"), object["f"])

	value, err = Decode([]byte(`[1.50, 1E3, 7]`))
	if assert.Nil(t, err) {
		assert.Equal(t, []any{json.Number("1.5"), json.Number("1000.0"), json.Number("7")}, value)
	}

	_, err = Decode([]byte(`{"a":1} {"b":2}`))
	assert.NotNil(t, err)

	_, err = Decode([]byte(`{"a":`))
	assert.NotNil(t, err)

	_, err = Decode([]byte(``))
	assert.NotNil(t, err)
}

func TestPretty(t *testing.T) {
	actual := Pretty(map[string]any{"name": "x", "list": []any{json.Number("1")}})
	assert.Equal(t, "{\n  \"list\": [\n    1\n  ],\n  \"name\": \"x\"\n}", actual)
}

func TestPretty_Numbers(t *testing.T) {
	document := map[string]any{"price": json.Number("1.50"), "count": json.Number("1E3")}
	assert.Equal(t, "{\n  \"count\": 1000.0,\n  \"price\": 1.5\n}", Pretty(document))
	assert.Equal(t, json.Number("1.50"), document["price"])
}
