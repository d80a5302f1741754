package generation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPayloadFencedBlock(t *testing.T) {
	raw := "Sure! Here is your form:\n```json\n{\"title\":\"T\"}\n```\nEnjoy."
	assert.Equal(t, `{"title":"T"}`, ExtractJSONPayload(raw))
}

func TestExtractJSONPayloadFencedBlockWithoutTag(t *testing.T) {
	raw := "```\n{\"title\":\"T\"}\n```"
	assert.Equal(t, `{"title":"T"}`, ExtractJSONPayload(raw))
}

func TestExtractJSONPayloadBraceSlice(t *testing.T) {
	raw := "The schema is {\"title\":\"T\",\"fields\":[]} which should work"
	assert.Equal(t, `{"title":"T","fields":[]}`, ExtractJSONPayload(raw))
}

func TestExtractJSONPayloadVerbatimFallback(t *testing.T) {
	assert.Equal(t, "no braces at all", ExtractJSONPayload("  no braces at all\n"))
}

func TestExtractJSONPayloadPrefersFenceOverBraces(t *testing.T) {
	raw := "{\"outer\":true}\n```json\n{\"inner\":true}\n```"
	assert.Equal(t, `{"inner":true}`, ExtractJSONPayload(raw))
}

func TestRepairJSONTrailingCommas(t *testing.T) {
	repaired, ok := RepairJSON(`{"a": [1, 2, ], "b": {"c": 3, }, }`)
	require.True(t, ok)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(repaired), &v))
	assert.Len(t, v["a"], 2)
}

func TestRepairJSONSingleQuotesAndBareKeys(t *testing.T) {
	repaired, ok := RepairJSON(`{title: 'My "form"', fields: []}`)
	require.True(t, ok)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(repaired), &v))
	assert.Equal(t, `My "form"`, v["title"])
}

func TestRepairJSONPythonLiteralsAndComments(t *testing.T) {
	repaired, ok := RepairJSON("{\n  \"a\": True, // enabled\n  \"b\": False,\n  \"c\": None\n}")
	require.True(t, ok)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(repaired), &v))
	assert.Equal(t, true, v["a"])
	assert.Equal(t, false, v["b"])
	assert.Nil(t, v["c"])
}

func TestRepairJSONLeavesValidInputAlone(t *testing.T) {
	input := `{"a":"true or None, it's all text","b":[1,2]}`
	repaired, ok := RepairJSON(input)
	require.True(t, ok)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(repaired), &v))
	assert.Equal(t, "true or None, it's all text", v["a"])
}

func TestRepairJSONReturnsInputWhenUnfixable(t *testing.T) {
	input := `{"a": [1, 2`
	repaired, ok := RepairJSON(input)
	assert.False(t, ok)
	assert.Equal(t, input, repaired)
}
