package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchListTrackAndUntrack(t *testing.T) {
	wl := WatchList{Term: "2257", Classes: []string{"CSE 476"}, Whitelist: []string{"88926"}}

	assert.False(t, wl.Track("CSE 476", "88926"))
	assert.True(t, wl.Track("CSE 476", "88927"))
	assert.True(t, wl.Track("MAT 343", "10001"))
	assert.Equal(t, []string{"CSE 476", "MAT 343"}, wl.Classes)
	assert.Equal(t, []string{"88926", "88927", "10001"}, wl.Whitelist)

	assert.True(t, wl.Untrack("88927"))
	assert.False(t, wl.Untrack("88927"))
	assert.True(t, wl.IsWhitelisted("88926"))
	assert.False(t, wl.IsWhitelisted("88927"))

	assert.True(t, wl.RemoveClass("MAT 343"))
	assert.Equal(t, []string{"CSE 476"}, wl.Classes)
}

func TestWatchListCloneIsIndependent(t *testing.T) {
	wl := WatchList{Term: "2257", Classes: []string{"CSE 476"}, Whitelist: []string{"88926"}}
	cp := wl.Clone()
	cp.Track("MAT 343", "1")

	assert.Equal(t, []string{"CSE 476"}, wl.Classes)
	assert.Equal(t, []string{"88926"}, wl.Whitelist)
}

func TestWatchListCloneEncodesEmptyLists(t *testing.T) {
	wl := WatchList{Term: "2257", Classes: []string{"CSE 476"}, Whitelist: []string{"88926"}}
	wl.Untrack("88926")

	raw, err := json.Marshal(wl.Clone())
	assert.NoError(t, err)
	assert.JSONEq(t, `{"term": "2257", "classes": ["CSE 476"], "whitelist": []}`, string(raw))

	raw, err = json.Marshal(WatchList{Term: "2257"}.Clone())
	assert.NoError(t, err)
	assert.JSONEq(t, `{"term": "2257", "classes": [], "whitelist": []}`, string(raw))
}
