package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteRoundTripKeepsExtras(t *testing.T) {
	raw := []byte(`{"prefix":"MALL1","site":"ShoppingCenter","name":"North Mall","status":"Active",
		"address":"1 Main","city":"Reno","state":"NV","zip":"89501","country":"USA",
		"zone":"B","gates":[1,2]}`)

	var s Site
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, "MALL1", s.Prefix)
	require.Len(t, s.Extras, 2)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
	assert.Contains(t, string(out), `"country":"USA","gates":[1,2],"zone":"B"}`)
}

func TestSiteMarshalKeepsFalseFlags(t *testing.T) {
	s := Site{Prefix: "P", HasCCTV: BoolPtr(false)}

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"has_cctv":false`)
	assert.NotContains(t, string(out), "requires_vehicle")
}

func TestSiteMarshalDoesNotEscapeHTML(t *testing.T) {
	s := Site{Prefix: "P", Notes: "gate <B> & dock"}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(s))
	assert.Contains(t, buf.String(), "gate <B> & dock")
}

func TestPhraseHotwordsAcceptStringOrList(t *testing.T) {
	var list []Phrase
	raw := `[
		{"cat":"Patrol","hotwords":["Door", 3, "exit"],"en":"a","es":"b"},
		{"cat":"Access","hotwords":" Badge , ,GATE ","en":"c","es":"d"},
		{"cat":"Safety","hotwords":null,"en":"e","es":"f","source":"manual"}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &list))

	assert.Equal(t, HotwordList{"Door", "exit"}, list[0].Hotwords)
	assert.Equal(t, HotwordList{"badge", "gate"}, list[1].Hotwords)
	assert.Nil(t, list[2].Hotwords)
	assert.Equal(t, json.RawMessage(`"manual"`), list[2].Extras["source"])

	out, err := json.Marshal(list[2])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"hotwords":[]`)
	assert.Contains(t, string(out), `"source":"manual"`)
}

func TestPhraseBelongsTo(t *testing.T) {
	site := Site{Site: "ShoppingCenter", Name: "North Mall", Address: "1 Main"}

	assert.True(t, Phrase{Site: "ShoppingCenter", Name: "North Mall", Address: "1 Main"}.BelongsTo(site))
	assert.False(t, Phrase{Site: "ShoppingCenter", Name: "North Mall", Address: "2 Main"}.BelongsTo(site))
}

func TestSplitHotwords(t *testing.T) {
	assert.Equal(t, []string{"door", "alarm"}, SplitHotwords(" Door, ,ALARM "))
	assert.Equal(t, []string{}, SplitHotwords(""))
}

func TestPagination(t *testing.T) {
	p := NewPaginationResult(45, 9, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 3, p.Page)
	start, end := p.Bounds()
	assert.Equal(t, 40, start)
	assert.Equal(t, 45, end)

	empty := NewPaginationResult(0, 0, 20)
	assert.Equal(t, 1, empty.Page)
	start, end = empty.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestRecordSitePrefix(t *testing.T) {
	assert.Equal(t, "A1", Record{"site_prefix": "A1"}.SitePrefix())
	assert.Equal(t, "", Record{"site_prefix": 3}.SitePrefix())
	assert.Equal(t, "", Record{}.SitePrefix())
}
