package studio

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mkantola/kaiku"
)

type (
	// EngineTrackID is the opaque identifier the native audio engine
	// assigns to a processing track, distinct from the synthesized string
	// ids the bridge uses for bookkeeping.
	EngineTrackID string

	// Registry is the engine-resource collaborator of the bridge: it
	// allocates and frees native processing tracks and mixer channels.
	// CreateTrack returns ok=false when the engine is unavailable or
	// rejects the allocation; the caller must tolerate that, skip channel
	// creation and carry on with the remaining layers. Mixer channel ids
	// are "ch_" + the engine track id.
	Registry interface {
		CreateTrack(name, color string, bus kaiku.Bus) (EngineTrackID, bool)
		CreateChannel(id EngineTrackID, name, color string)
		DeleteTrack(id EngineTrackID)
		DeleteChannel(channelID string)
	}

	// NullRegistry rejects every allocation, modelling an engine that is
	// not running.
	NullRegistry struct{}

	// StubRegistry is an in-memory Registry for tests and the headless
	// tool: it accepts everything, hands out fresh ids and remembers what
	// is alive.
	StubRegistry struct {
		logger   *log.Logger
		tracks   map[EngineTrackID]string
		channels map[string]string
	}
)

func (NullRegistry) CreateTrack(name, color string, bus kaiku.Bus) (EngineTrackID, bool) {
	return "", false
}
func (NullRegistry) CreateChannel(id EngineTrackID, name, color string) {}
func (NullRegistry) DeleteTrack(id EngineTrackID)                       {}
func (NullRegistry) DeleteChannel(channelID string)                     {}

// NewStubRegistry returns an empty stub registry; logger may be nil.
func NewStubRegistry(logger *log.Logger) *StubRegistry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &StubRegistry{
		logger:   logger,
		tracks:   make(map[EngineTrackID]string),
		channels: make(map[string]string),
	}
}

func (r *StubRegistry) CreateTrack(name, color string, bus kaiku.Bus) (EngineTrackID, bool) {
	id := EngineTrackID("eng_" + uuid.New().String())
	r.tracks[id] = name
	r.logger.Debug("engine track created", "id", id, "name", name, "bus", bus.String(), "color", color)
	return id, true
}

func (r *StubRegistry) CreateChannel(id EngineTrackID, name, color string) {
	r.channels["ch_"+string(id)] = name
	r.logger.Debug("mixer channel created", "id", "ch_"+string(id), "name", name)
}

func (r *StubRegistry) DeleteTrack(id EngineTrackID) {
	delete(r.tracks, id)
	r.logger.Debug("engine track deleted", "id", id)
}

func (r *StubRegistry) DeleteChannel(channelID string) {
	delete(r.channels, channelID)
	r.logger.Debug("mixer channel deleted", "id", channelID)
}

// TrackCount reports how many engine tracks are currently alive.
func (r *StubRegistry) TrackCount() int { return len(r.tracks) }

// ChannelCount reports how many mixer channels are currently alive.
func (r *StubRegistry) ChannelCount() int { return len(r.channels) }

// HasTrack reports whether the engine track id is alive.
func (r *StubRegistry) HasTrack(id EngineTrackID) bool {
	_, ok := r.tracks[id]
	return ok
}
