package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestElement_UnknownFieldsSurviveRoundTrip verifies that application-defined
// keys are kept verbatim through unmarshal and marshal.
func TestElement_UnknownFieldsSurviveRoundTrip(t *testing.T) {
	input := `{"id":"rect-1","version":3,"versionNonce":77,"isDeleted":false,"updated":1700000000000,"index":"a0","type":"rectangle","x":10.5,"boundElements":[{"id":"t1","type":"text"}]}`

	var el Element
	require.NoError(t, json.Unmarshal([]byte(input), &el))

	assert.Equal(t, "rect-1", el.ID)
	assert.Equal(t, int64(3), el.Version)
	assert.Equal(t, int64(77), el.VersionNonce)
	assert.Equal(t, int64(1700000000000), el.Updated)
	assert.Equal(t, "a0", el.Index)

	typ, ok := el.Field("type")
	require.True(t, ok)
	assert.JSONEq(t, `"rectangle"`, string(typ))

	out, err := json.Marshal(el)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

// TestElement_StructRoundTrip verifies that a marshaled element decodes to an
// equal value, including elements without extra fields.
func TestElement_StructRoundTrip(t *testing.T) {
	plain := Element{ID: "a", Version: 1, VersionNonce: 2}
	withExtra, err := Element{ID: "b", Version: 4, IsDeleted: true}.WithField("strokeColor", "#000")
	require.NoError(t, err)

	for _, original := range []Element{plain, withExtra} {
		raw, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Element
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, original, decoded)
	}
}

// TestElement_ExtraFieldsKeepBytes verifies that extra values are stored
// compact and re-encoded without HTML escaping, so a second round trip
// yields an equal element.
func TestElement_ExtraFieldsKeepBytes(t *testing.T) {
	input := `{
		"id": "text-1",
		"version": 2,
		"versionNonce": 9,
		"isDeleted": false,
		"type": "text",
		"text": "a < b && c > d",
		"customData": { "tags" : [ "x", "<y>" ], "n": 1.50 }
	}`

	var first Element
	require.NoError(t, json.Unmarshal([]byte(input), &first))

	custom, ok := first.Field("customData")
	require.True(t, ok)
	assert.Equal(t, `{"tags":["x","<y>"],"n":1.50}`, string(custom))

	out, err := EncodeJSON(first)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"text":"a < b && c > d"`)
	assert.NotContains(t, string(out), `\u003c`)

	var second Element
	require.NoError(t, json.Unmarshal(out, &second))
	assert.Equal(t, first, second)

	again, err := EncodeJSON(second)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestElement_MarshalJSONDoesNotEscapeHTML(t *testing.T) {
	el, err := Element{ID: "a", Version: 1}.WithField("link", "https://x.test/?a=1&b=<2>")
	require.NoError(t, err)

	raw, ok := el.Field("link")
	require.True(t, ok)
	assert.Equal(t, `"https://x.test/?a=1&b=<2>"`, string(raw))

	out, err := el.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"link":"https://x.test/?a=1&b=<2>"`)
}

func TestEncodeJSON(t *testing.T) {
	out, err := EncodeJSON(Elements{{ID: "<a>"}})
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"<a>","isDeleted":false,"version":0,"versionNonce":0}]`, string(out))

	_, err = EncodeJSON(make(chan int))
	assert.Error(t, err)
}

// TestElement_NullKnownFields verifies that null values leave zero values.
func TestElement_NullKnownFields(t *testing.T) {
	var el Element
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","version":null,"index":null}`), &el))
	assert.Equal(t, Element{ID: "a"}, el)
}

// TestElement_InvalidKnownField verifies that a badly typed known field is
// rejected.
func TestElement_InvalidKnownField(t *testing.T) {
	var el Element
	err := json.Unmarshal([]byte(`{"id":"a","version":"three"}`), &el)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

// TestElement_WithFieldReservedKey verifies that known keys cannot be
// shadowed through WithField.
func TestElement_WithFieldReservedKey(t *testing.T) {
	_, err := Element{ID: "a"}.WithField("version", 5)
	require.Error(t, err)
}

// TestElement_WithFieldDoesNotAlias verifies that WithField copies the field
// map instead of mutating the receiver.
func TestElement_WithFieldDoesNotAlias(t *testing.T) {
	base, err := Element{ID: "a"}.WithField("x", 1)
	require.NoError(t, err)

	changed, err := base.WithField("x", 2)
	require.NoError(t, err)

	x, _ := base.Field("x")
	assert.JSONEq(t, "1", string(x))
	x, _ = changed.Field("x")
	assert.JSONEq(t, "2", string(x))
}

// TestMergeContext_IsActive covers every interaction slot and the empty id.
func TestMergeContext_IsActive(t *testing.T) {
	mctx := MergeContext{EditingElementID: "e", ResizingElementID: "r", DraggingElementID: "d"}

	assert.True(t, mctx.IsActive("e"))
	assert.True(t, mctx.IsActive("r"))
	assert.True(t, mctx.IsActive("d"))
	assert.False(t, mctx.IsActive("x"))
	assert.False(t, MergeContext{}.IsActive(""))
}

// TestFileIDSet_Sorted verifies set helpers.
func TestFileIDSet_Sorted(t *testing.T) {
	s := FileIDSet{}
	s.Add("b")
	s.Add("a")
	s.Add("b")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, []FileID{"a", "b"}, s.Sorted())
}
