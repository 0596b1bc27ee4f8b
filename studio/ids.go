package studio

import "strings"

// The bridge addresses the timeline objects it owns through synthesized
// string ids derived from the middleware (event, layer) pair:
//
//	folder track : mw_folder_{eventId}
//	leaf track   : mw_track_{eventId}__{layerId}
//	clip         : mw_clip_{eventId}__{layerId}
//
// The grammar is a compatibility contract with existing project data and
// must not change. Parsing splits at the first occurrence of the
// separator, which is only reversible while neither component contains
// "__"; the model therefore assigns uuid ids and refuses foreign ids that
// contain the separator (validObjectID).
const (
	folderIDPrefix = "mw_folder_"
	trackIDPrefix  = "mw_track_"
	clipIDPrefix   = "mw_clip_"
	idSeparator    = "__"
)

func FolderTrackID(eventID string) string {
	return folderIDPrefix + eventID
}

func LayerTrackID(eventID, layerID string) string {
	return trackIDPrefix + eventID + idSeparator + layerID
}

func LayerClipID(eventID, layerID string) string {
	return clipIDPrefix + eventID + idSeparator + layerID
}

// ParseFolderTrackID recovers the event id from a folder track id, ok
// being false when the id is not bridge-owned.
func ParseFolderTrackID(id string) (eventID string, ok bool) {
	rest, found := strings.CutPrefix(id, folderIDPrefix)
	if !found || rest == "" {
		return "", false
	}
	return rest, true
}

// ParseLayerTrackID recovers the (event, layer) pair from a leaf track id.
func ParseLayerTrackID(id string) (eventID, layerID string, ok bool) {
	return parsePair(id, trackIDPrefix)
}

// ParseLayerClipID recovers the (event, layer) pair from a clip id.
func ParseLayerClipID(id string) (eventID, layerID string, ok bool) {
	return parsePair(id, clipIDPrefix)
}

func parsePair(id, prefix string) (eventID, layerID string, ok bool) {
	rest, found := strings.CutPrefix(id, prefix)
	if !found {
		return "", "", false
	}
	sep := strings.Index(rest, idSeparator)
	if sep < 0 {
		return "", "", false
	}
	eventID, layerID = rest[:sep], rest[sep+len(idSeparator):]
	if eventID == "" || layerID == "" {
		return "", "", false
	}
	return eventID, layerID, true
}

// IsSyncedTrack reports whether the track id belongs to the bridge. The
// host UI uses this to forbid manual deletion of bridge-owned tracks.
func IsSyncedTrack(id string) bool {
	if eventID, layerID, ok := ParseLayerTrackID(id); ok {
		return eventID != "" && layerID != ""
	}
	_, ok := ParseFolderTrackID(id)
	return ok
}

// IsSyncedClip reports whether the clip id belongs to the bridge.
func IsSyncedClip(id string) bool {
	_, _, ok := ParseLayerClipID(id)
	return ok
}

// validObjectID reports whether an event or layer id may be used in the
// synthesized id grammar.
func validObjectID(id string) bool {
	return id != "" && !strings.Contains(id, idSeparator)
}
