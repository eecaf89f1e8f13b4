package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceDecodesStringEncodedArray(t *testing.T) {
	var m Market
	err := json.Unmarshal([]byte(`{
		"id": "1",
		"clobTokenIds": "[\"111\", \"222\"]",
		"outcomes": "[\"Yes\", \"No\"]",
		"outcomePrices": "[\"0.65\", \"0.35\"]"
	}`), &m)
	require.NoError(t, err)

	assert.Equal(t, StringSlice{"111", "222"}, m.ClobTokenIDs)
	assert.Equal(t, StringSlice{"Yes", "No"}, m.Outcomes)
	assert.Equal(t, StringSlice{"0.65", "0.35"}, m.OutcomePrices)
}

func TestStringSliceDecodesDirectArray(t *testing.T) {
	var s StringSlice
	err := json.Unmarshal([]byte(`["111", "222"]`), &s)
	require.NoError(t, err)
	assert.Equal(t, StringSlice{"111", "222"}, s)
}

func TestStringSliceEmptyString(t *testing.T) {
	var s StringSlice
	err := json.Unmarshal([]byte(`""`), &s)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestStringSliceRejectsGarbage(t *testing.T) {
	var s StringSlice
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
	assert.Error(t, json.Unmarshal([]byte(`"not an array"`), &s))
}
