package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFromString(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"25%", 25},
		{"100%", 100},
		{" 75% ", 75},
		{"57.5", 57.5},
		{"24,000", 24000},
		{"", 0},
		{"abc", 0},
		{"%", 0},
	}

	for _, c := range cases {
		got := FlexFromString(c.in)
		assert.Equal(t, c.want, got.Value, "input %q", c.in)
		assert.Equal(t, c.in, got.Raw)
		assert.False(t, got.Numeric)
	}
}

func TestFlexNumberUnmarshalJSON(t *testing.T) {
	var doc struct {
		Pct FlexNumber `json:"pct"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"pct": 50}`), &doc))
	assert.Equal(t, 50.0, doc.Pct.Value)
	assert.True(t, doc.Pct.Numeric)

	require.NoError(t, json.Unmarshal([]byte(`{"pct": "25%"}`), &doc))
	assert.Equal(t, 25.0, doc.Pct.Value)
	assert.False(t, doc.Pct.Numeric)

	// null and junk degrade to zero, never error
	require.NoError(t, json.Unmarshal([]byte(`{"pct": null}`), &doc))
	assert.Equal(t, 0.0, doc.Pct.Value)
}

func TestFlexNumberMarshalJSON(t *testing.T) {
	data, err := json.Marshal(FlexFromString("25%"))
	require.NoError(t, err)
	assert.Equal(t, "25", string(data))
}
