package studio

import (
	"slices"

	"github.com/mkantola/kaiku"
)

type (
	// Timeline owns the DAW-side track hierarchy and the clips placed on
	// the tracks. Structural mutations (used by batch application) go
	// through Add/Remove; parameter writes go through the typed views in
	// bool.go, float.go and int.go, which apply to the local object first
	// and are then offered to every registered ParamHook so the bridge can
	// route writes on its synthesized ids back to the event model.
	Timeline struct {
		tracks []kaiku.Track
		clips  []kaiku.Clip
		hooks  []ParamHook
	}

	// Param enumerates the writable DAW-side parameters that route through
	// hooks. Volume, Pan, StartTime, FadeIn, FadeOut, SourceOffset and
	// Duration carry their value in ParamValue.Float; Mute, Solo and Loop
	// in ParamValue.Bool; Bus in ParamValue.Int (as the output bus enum).
	Param int

	// ParamValue is the value of one parameter write; only the slot the
	// Param documents is meaningful.
	ParamValue struct {
		Float float64
		Bool  bool
		Int   int
	}

	// ParamHook observes parameter writes. Returning true means the hook
	// routed the value onward; the local timeline object has been updated
	// either way.
	ParamHook interface {
		TrackParam(id string, p Param, v ParamValue) bool
		ClipParam(id string, p Param, v ParamValue) bool
	}
)

const (
	ParamVolume Param = iota
	ParamPan
	ParamMute
	ParamSolo
	ParamBus
	ParamStartTime
	ParamFadeIn
	ParamFadeOut
	ParamSourceOffset
	ParamDuration
	ParamLoop
)

var paramNames = map[Param]string{
	ParamVolume:       "volume",
	ParamPan:          "pan",
	ParamMute:         "mute",
	ParamSolo:         "solo",
	ParamBus:          "bus",
	ParamStartTime:    "startTime",
	ParamFadeIn:       "fadeIn",
	ParamFadeOut:      "fadeOut",
	ParamSourceOffset: "sourceOffset",
	ParamDuration:     "duration",
	ParamLoop:         "loop",
}

func (p Param) String() string { return paramNames[p] }

func NewTimeline() *Timeline {
	return &Timeline{}
}

// AddHook registers a parameter hook. Hooks run synchronously in
// registration order.
func (tl *Timeline) AddHook(h ParamHook) {
	tl.hooks = append(tl.hooks, h)
}

func (tl *Timeline) RemoveHook(h ParamHook) {
	tl.hooks = slices.DeleteFunc(tl.hooks, func(x ParamHook) bool { return x == h })
}

// Tracks returns the tracks in display order; treat the slice as
// read-only.
func (tl *Timeline) Tracks() []kaiku.Track { return tl.tracks }

func (tl *Timeline) Clips() []kaiku.Clip { return tl.clips }

func (tl *Timeline) trackIndex(id string) int {
	return slices.IndexFunc(tl.tracks, func(t kaiku.Track) bool { return t.ID == id })
}

func (tl *Timeline) clipIndex(id string) int {
	return slices.IndexFunc(tl.clips, func(c kaiku.Clip) bool { return c.ID == id })
}

func (tl *Timeline) Track(id string) (kaiku.Track, bool) {
	if i := tl.trackIndex(id); i >= 0 {
		return tl.tracks[i], true
	}
	return kaiku.Track{}, false
}

func (tl *Timeline) Clip(id string) (kaiku.Clip, bool) {
	if i := tl.clipIndex(id); i >= 0 {
		return tl.clips[i], true
	}
	return kaiku.Clip{}, false
}

// AddTrack appends a track, replacing any track with the same id. Batch
// application relies on append order: a folder precedes its children in
// the batch's track list.
func (tl *Timeline) AddTrack(t kaiku.Track) {
	if i := tl.trackIndex(t.ID); i >= 0 {
		tl.tracks[i] = t.Copy()
		return
	}
	tl.tracks = append(tl.tracks, t.Copy())
}

func (tl *Timeline) RemoveTrack(id string) {
	if i := tl.trackIndex(id); i >= 0 {
		tl.tracks = slices.Delete(tl.tracks, i, i+1)
	}
}

func (tl *Timeline) AddClip(c kaiku.Clip) {
	if i := tl.clipIndex(c.ID); i >= 0 {
		tl.clips[i] = c.Copy()
		return
	}
	tl.clips = append(tl.clips, c.Copy())
}

func (tl *Timeline) RemoveClip(id string) {
	if i := tl.clipIndex(id); i >= 0 {
		tl.clips = slices.Delete(tl.clips, i, i+1)
	}
}

func (tl *Timeline) setTrackParam(id string, p Param, v ParamValue) {
	if i := tl.trackIndex(id); i >= 0 {
		t := &tl.tracks[i]
		switch p {
		case ParamVolume:
			t.Volume = v.Float
		case ParamPan:
			t.Pan = v.Float
		case ParamMute:
			t.Muted = v.Bool
		case ParamSolo:
			t.Soloed = v.Bool
		case ParamBus:
			t.Output = kaiku.Bus(v.Int)
		}
	}
	for _, h := range tl.hooks {
		h.TrackParam(id, p, v)
	}
}

func (tl *Timeline) setClipParam(id string, p Param, v ParamValue) {
	if i := tl.clipIndex(id); i >= 0 {
		c := &tl.clips[i]
		switch p {
		case ParamStartTime:
			c.StartTime = v.Float
		case ParamFadeIn:
			c.FadeIn = v.Float
		case ParamFadeOut:
			c.FadeOut = v.Float
		case ParamSourceOffset:
			c.SourceOffset = v.Float
		case ParamDuration:
			c.Duration = v.Float
		case ParamLoop:
			c.LoopEnabled = v.Bool
		case ParamMute:
			// clips have no mute of their own; mute the owning track
			if j := tl.trackIndex(c.TrackID); j >= 0 {
				tl.tracks[j].Muted = v.Bool
			}
		}
	}
	for _, h := range tl.hooks {
		h.ClipParam(id, p, v)
	}
}
