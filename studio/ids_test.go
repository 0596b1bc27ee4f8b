package studio_test

import (
	"strings"
	"testing"

	"github.com/mkantola/kaiku/studio"
)

func TestIDRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"E1", "L1"},
		{"9b2e5c", "a"},
		{"win_big", "layer-2"},
	}
	for _, p := range pairs {
		eventID, layerID := p[0], p[1]
		if got, ok := studio.ParseFolderTrackID(studio.FolderTrackID(eventID)); !ok || got != eventID {
			t.Errorf("folder round trip for %q: got %q, %v", eventID, got, ok)
		}
		e, l, ok := studio.ParseLayerTrackID(studio.LayerTrackID(eventID, layerID))
		if !ok || e != eventID || l != layerID {
			t.Errorf("track round trip for (%q, %q): got (%q, %q), %v", eventID, layerID, e, l, ok)
		}
		e, l, ok = studio.ParseLayerClipID(studio.LayerClipID(eventID, layerID))
		if !ok || e != eventID || l != layerID {
			t.Errorf("clip round trip for (%q, %q): got (%q, %q), %v", eventID, layerID, e, l, ok)
		}
	}
}

func TestParseRejectsMalformedIDs(t *testing.T) {
	for _, id := range []string{
		"",
		"mw_track_E1",     // no separator
		"mw_track___L1",   // empty event id
		"mw_track_E1__",   // empty layer id
		"mw_clip_E1",      // no separator
		"track_E1__L1",    // wrong prefix
		"MW_TRACK_E1__L1", // case matters
		"mw_folder_",      // empty event id
		"mw_trackless",    // no separator after the prefix
	} {
		if _, _, ok := studio.ParseLayerTrackID(id); ok {
			t.Errorf("ParseLayerTrackID(%q) accepted", id)
		}
		if _, _, ok := studio.ParseLayerClipID(id); ok {
			t.Errorf("ParseLayerClipID(%q) accepted", id)
		}
		if _, ok := studio.ParseFolderTrackID(id); ok {
			t.Errorf("ParseFolderTrackID(%q) accepted", id)
		}
	}
}

func TestParseSplitsAtFirstSeparator(t *testing.T) {
	// a layer id may itself contain the separator when it came from outside
	// the model; parsing must still split at the first occurrence
	e, l, ok := studio.ParseLayerTrackID("mw_track_E1__a__b")
	if !ok || e != "E1" || l != "a__b" {
		t.Errorf("got (%q, %q), %v; want split at first separator", e, l, ok)
	}
}

func TestSyncedPredicates(t *testing.T) {
	owned := map[string]bool{
		"mw_folder_E1":      true,
		"mw_track_E1__L1":   true,
		"usertrack":         false,
		"mw_track_E1":       false,
		"mw_clip_E1__L1":    false, // a clip id is not a track id
	}
	for id, want := range owned {
		if got := studio.IsSyncedTrack(id); got != want {
			t.Errorf("IsSyncedTrack(%q) = %v, want %v", id, got, want)
		}
	}
	if !studio.IsSyncedClip("mw_clip_E1__L1") {
		t.Error("IsSyncedClip rejected an owned clip id")
	}
	if studio.IsSyncedClip("mw_track_E1__L1") {
		t.Error("IsSyncedClip accepted a track id")
	}
}

func FuzzLayerTrackID(f *testing.F) {
	f.Add("E1", "L1")
	f.Add("a", "b")
	f.Add("9b2e5c-uuid", "layer-2")
	f.Fuzz(func(t *testing.T, eventID, layerID string) {
		if eventID == "" || layerID == "" ||
			strings.Contains(eventID, "__") || strings.Contains(layerID, "__") {
			t.Skip()
		}
		e, l, ok := studio.ParseLayerTrackID(studio.LayerTrackID(eventID, layerID))
		if !ok || e != eventID || l != layerID {
			t.Errorf("round trip of (%q, %q) gave (%q, %q), %v", eventID, layerID, e, l, ok)
		}
	})
}
