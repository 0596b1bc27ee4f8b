package studio

import (
	"slices"

	"github.com/mkantola/kaiku"
)

type (
	// eventSnapshot is an immutable value copy of an event, taken at the
	// last successful sync and used purely for equality diffing. Snapshots
	// never leave the Sync controller.
	eventSnapshot struct {
		name         string
		masterVolume float64
		stages       []string
		layers       []layerSnapshot
	}

	layerSnapshot struct {
		id          string
		name        string
		audioPath   string
		volume      float64
		pan         float64
		offsetMs    float64
		fadeInMs    float64
		fadeOutMs   float64
		trimStartMs float64
		trimEndMs   float64
		muted       bool
		solo        bool
		loop        bool
		busID       int
		hasBus      bool
		duration    float64
		hasDuration bool
	}
)

func snapshotEvent(e kaiku.Event) eventSnapshot {
	s := eventSnapshot{
		name:         e.Name,
		masterVolume: e.MasterVolume,
		stages:       slices.Clone(e.TriggerStages),
		layers:       make([]layerSnapshot, len(e.Layers)),
	}
	for i, l := range e.Layers {
		s.layers[i] = snapshotLayer(l)
	}
	return s
}

func snapshotLayer(l kaiku.Layer) layerSnapshot {
	s := layerSnapshot{
		id:          l.ID,
		name:        l.Name,
		audioPath:   l.AudioPath,
		volume:      l.Volume,
		pan:         l.Pan,
		offsetMs:    l.OffsetMs,
		fadeInMs:    l.FadeInMs,
		fadeOutMs:   l.FadeOutMs,
		trimStartMs: l.TrimStartMs,
		trimEndMs:   l.TrimEndMs,
		muted:       l.Muted,
		solo:        l.Solo,
		loop:        l.Loop,
	}
	if l.Bus != nil {
		s.busID, s.hasBus = *l.Bus, true
	}
	if l.DurationSeconds != nil {
		s.duration, s.hasDuration = *l.DurationSeconds, true
	}
	return s
}

// equals compares the snapshot to a live event field by field, layer
// order included. Any inequality marks the whole event as changed; there
// is no partial patch, a changed event is torn down and rebuilt.
// Waveforms are display-only and not compared.
func (s eventSnapshot) equals(e kaiku.Event) bool {
	if s.name != e.Name || s.masterVolume != e.MasterVolume {
		return false
	}
	if !slices.Equal(s.stages, e.TriggerStages) {
		return false
	}
	if len(s.layers) != len(e.Layers) {
		return false
	}
	for i, l := range e.Layers {
		if s.layers[i] != snapshotLayer(l) {
			return false
		}
	}
	return true
}
