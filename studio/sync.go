package studio

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/mkantola/kaiku"
)

type (
	// SyncBatch aggregates the timeline mutations of one diff cycle across
	// every added, removed and changed event. It is applied atomically:
	// either the whole batch lands on the timeline, or the bridge's
	// snapshots and engine-id map stay untouched so the next cycle
	// recomputes the identical diff and retries.
	SyncBatch struct {
		TracksToAdd      []kaiku.Track `yaml:",omitempty"`
		TrackIDsToRemove []string      `yaml:",flow,omitempty"`
		ClipsToAdd       []kaiku.Clip  `yaml:",omitempty"`
		ClipIDsToRemove  []string      `yaml:",flow,omitempty"`
	}

	// Sync is the bidirectional bridge between the event model and the
	// timeline. It subscribes to model changes, diffs against its
	// last-synced snapshots and applies one SyncBatch forward; and it
	// hooks timeline parameter writes on its synthesized ids to route them
	// back into the model. It exclusively owns the snapshot table and the
	// engine-id map; nothing else may touch them.
	Sync struct {
		model    *Model
		timeline *Timeline
		registry Registry
		logger   *log.Logger

		apply func(SyncBatch) error

		lastSynced     map[string]eventSnapshot
		engineTrackIDs map[string]EngineTrackID

		state syncState

		trackColor string

		sub *Subscription
	}

	// syncState is the reentrancy guard: each direction acquires the guard
	// before mutating the opposite model and is a no-op while the other
	// direction holds it. Acquisition is scoped; the release closure must
	// be deferred so it runs on every exit path.
	syncState int

	// stagedEngine collects the engine-id map mutations of one cycle.
	// They are committed only after the batch applied cleanly; on failure
	// the tracks created this cycle are deleted again so that an engine-id
	// mapping entry exists iff the timeline track exists and the engine
	// accepted its creation.
	stagedEngine struct {
		adds     map[string]EngineTrackID
		removals []stagedRemoval
		created  []EngineTrackID
	}

	stagedRemoval struct {
		trackID  string
		engineID EngineTrackID
	}
)

const (
	stateIdle syncState = iota
	stateApplyingForward
	stateApplyingReverse
)

// DefaultTrackColor is the color requested for engine tracks and mixer
// channels created by the bridge.
const DefaultTrackColor = "#8aa3c0"

const defaultClipDuration = 1.0

// NewSync wires the bridge between model and timeline: it subscribes to
// the model and registers itself as a parameter hook on the timeline.
// Batches are applied into the timeline unless SetApply overrides the
// callback. logger may be nil.
func NewSync(model *Model, timeline *Timeline, registry Registry, logger *log.Logger) *Sync {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Sync{
		model:          model,
		timeline:       timeline,
		registry:       registry,
		logger:         logger,
		lastSynced:     make(map[string]eventSnapshot),
		engineTrackIDs: make(map[string]EngineTrackID),
		trackColor:     DefaultTrackColor,
	}
	s.apply = s.applyToTimeline
	s.sub = model.Subscribe(s.onModelChanged)
	timeline.AddHook(s)
	return s
}

// Close detaches the bridge from both models. Timeline objects it created
// stay behind.
func (s *Sync) Close() {
	s.sub.Close()
	s.timeline.RemoveHook(s)
}

// SetApply overrides the batch apply callback; nil restores the default
// of applying into the timeline.
func (s *Sync) SetApply(apply func(SyncBatch) error) {
	if apply == nil {
		apply = s.applyToTimeline
	}
	s.apply = apply
}

// SetTrackColor overrides the color requested from the engine.
func (s *Sync) SetTrackColor(color string) {
	s.trackColor = color
}

// EngineTrackID looks up the engine id mapped to a synthesized track id.
func (s *Sync) EngineTrackID(trackID string) (EngineTrackID, bool) {
	id, ok := s.engineTrackIDs[trackID]
	return id, ok
}

func (s *Sync) begin(target syncState) (release func(), ok bool) {
	if s.state != stateIdle {
		return func() {}, false
	}
	s.state = target
	return func() { s.state = stateIdle }, true
}

// Forward direction: model -> timeline.

func (s *Sync) onModelChanged() {
	release, ok := s.begin(stateApplyingForward)
	if !ok {
		return
	}
	defer release()
	s.syncOnce()
}

func (s *Sync) syncOnce() {
	// only events with at least one layer take part in the sync
	current := make(map[string]kaiku.Event)
	for _, e := range s.model.Events() {
		if len(e.Layers) > 0 {
			current[e.ID] = e
		}
	}

	var batch SyncBatch
	staged := stagedEngine{adds: make(map[string]EngineTrackID)}

	var removed []string
	for id := range s.lastSynced {
		if _, ok := current[id]; !ok {
			removed = append(removed, id)
		}
	}
	slices.Sort(removed)
	for _, id := range removed {
		s.teardownEvent(id, s.lastSynced[id], &batch, &staged)
	}

	// added and changed events, in authoring order; a changed event is
	// torn down from its previous snapshot and rebuilt from the live
	// event, so the two halves operate on disjoint, correct id sets
	for _, e := range s.model.Events() {
		if len(e.Layers) == 0 {
			continue
		}
		snap, known := s.lastSynced[e.ID]
		if known && snap.equals(e) {
			continue
		}
		if known {
			s.teardownEvent(e.ID, snap, &batch, &staged)
		}
		s.buildEvent(e, &batch, &staged)
	}

	if len(batch.TracksToAdd) == 0 && len(batch.TrackIDsToRemove) == 0 &&
		len(batch.ClipsToAdd) == 0 && len(batch.ClipIDsToRemove) == 0 {
		return
	}

	if err := s.apply(batch); err != nil {
		s.logger.Error("sync batch apply failed, keeping previous baseline", "err", err)
		for _, engineID := range staged.created {
			s.registry.DeleteTrack(engineID)
			s.registry.DeleteChannel("ch_" + string(engineID))
		}
		return
	}

	for _, r := range staged.removals {
		delete(s.engineTrackIDs, r.trackID)
		s.registry.DeleteTrack(r.engineID)
		s.registry.DeleteChannel("ch_" + string(r.engineID))
	}
	for trackID, engineID := range staged.adds {
		s.engineTrackIDs[trackID] = engineID
	}
	s.lastSynced = make(map[string]eventSnapshot, len(current))
	for id, e := range current {
		s.lastSynced[id] = snapshotEvent(e)
	}
	s.logger.Debug("sync batch applied",
		"tracksAdded", len(batch.TracksToAdd), "tracksRemoved", len(batch.TrackIDsToRemove),
		"clipsAdded", len(batch.ClipsToAdd), "clipsRemoved", len(batch.ClipIDsToRemove))
}

// buildEvent appends the tracks and clips for one added or rebuilt event.
// The folder track goes to position 0 of the event's group so it precedes
// its children when the batch is applied in order.
func (s *Sync) buildEvent(e kaiku.Event, batch *SyncBatch, staged *stagedEngine) {
	var tracks []kaiku.Track
	children := make([]string, 0, len(e.Layers))
	folderID := FolderTrackID(e.ID)
	for _, l := range e.Layers {
		if l.AudioPath == "" {
			continue
		}
		trackID := LayerTrackID(e.ID, l.ID)
		busID := 0
		if l.Bus != nil {
			busID = *l.Bus
		}
		bus := kaiku.BusForID(busID)
		if engineID, ok := s.registry.CreateTrack(l.Name, s.trackColor, bus); ok {
			staged.adds[trackID] = engineID
			staged.created = append(staged.created, engineID)
			s.registry.CreateChannel(engineID, l.Name, s.trackColor)
		} else {
			// partial success within one event is acceptable: the
			// timeline track still appears, it just has no engine
			// resources behind it
			s.logger.Warn("engine rejected track creation", "track", trackID, "layer", l.Name)
			s.model.Alerts().Add(fmt.Sprintf("audio engine rejected track for layer %q", l.Name), Warning)
		}
		tracks = append(tracks, kaiku.Track{
			ID:           trackID,
			Name:         l.Name,
			Type:         kaiku.TrackAudio,
			ParentFolder: folderID,
			Volume:       l.Volume,
			Pan:          l.Pan,
			Muted:        l.Muted,
			Soloed:       l.Solo,
			Output:       bus,
		})
		duration := defaultClipDuration
		if l.DurationSeconds != nil {
			duration = *l.DurationSeconds
		}
		batch.ClipsToAdd = append(batch.ClipsToAdd, kaiku.Clip{
			ID:           LayerClipID(e.ID, l.ID),
			TrackID:      trackID,
			Name:         l.Name,
			StartTime:    l.OffsetMs / 1000,
			Duration:     duration,
			SourceFile:   l.AudioPath,
			Waveform:     slices.Clone(l.Waveform),
			FadeIn:       l.FadeInMs / 1000,
			FadeOut:      l.FadeOutMs / 1000,
			SourceOffset: l.TrimStartMs / 1000,
			EventID:      e.ID,
			LoopEnabled:  l.Loop,
		})
		children = append(children, trackID)
	}
	folderName := e.Name
	if len(e.TriggerStages) > 0 && e.TriggerStages[0] != "" {
		folderName = e.TriggerStages[0]
	}
	folder := kaiku.Track{
		ID:             folderID,
		Name:           folderName,
		Type:           kaiku.TrackFolder,
		Children:       children,
		Volume:         e.MasterVolume,
		Output:         kaiku.BusMaster,
		FolderExpanded: true,
	}
	tracks = slices.Insert(tracks, 0, folder)
	batch.TracksToAdd = append(batch.TracksToAdd, tracks...)
}

// teardownEvent removes everything the previous snapshot says exists for
// the event. It is driven by the snapshot's layer list, not the current
// event, which may already be gone or reshaped.
func (s *Sync) teardownEvent(eventID string, snap eventSnapshot, batch *SyncBatch, staged *stagedEngine) {
	for _, l := range snap.layers {
		trackID := LayerTrackID(eventID, l.id)
		batch.TrackIDsToRemove = append(batch.TrackIDsToRemove, trackID)
		batch.ClipIDsToRemove = append(batch.ClipIDsToRemove, LayerClipID(eventID, l.id))
		if engineID, ok := s.engineTrackIDs[trackID]; ok {
			staged.removals = append(staged.removals, stagedRemoval{trackID: trackID, engineID: engineID})
		}
	}
	batch.TrackIDsToRemove = append(batch.TrackIDsToRemove, FolderTrackID(eventID))
}

func (s *Sync) applyToTimeline(batch SyncBatch) error {
	for _, id := range batch.ClipIDsToRemove {
		s.timeline.RemoveClip(id)
	}
	for _, id := range batch.TrackIDsToRemove {
		s.timeline.RemoveTrack(id)
	}
	for _, t := range batch.TracksToAdd {
		s.timeline.AddTrack(t)
	}
	for _, c := range batch.ClipsToAdd {
		s.timeline.AddClip(c)
	}
	return nil
}

// Reverse direction: timeline -> model. Sync is a ParamHook; writes on
// ids it does not own return false so other routing can handle them, and
// writes on objects deleted concurrently are silent no-ops.

func (s *Sync) TrackParam(id string, p Param, v ParamValue) bool {
	release, ok := s.begin(stateApplyingReverse)
	if !ok {
		return false
	}
	defer release()
	if eventID, ok := ParseFolderTrackID(id); ok {
		switch p {
		case ParamVolume:
			s.model.SetMasterVolume(eventID, v.Float)
		case ParamMute:
			s.model.SetAllLayersMuted(eventID, v.Bool)
		default:
			return false
		}
		return true
	}
	eventID, layerID, ok := ParseLayerTrackID(id)
	if !ok {
		return false
	}
	switch p {
	case ParamVolume:
		s.model.SetLayerVolume(eventID, layerID, v.Float)
	case ParamPan:
		s.model.SetLayerPan(eventID, layerID, v.Float)
	case ParamMute:
		s.model.SetLayerMuted(eventID, layerID, v.Bool)
	case ParamSolo:
		s.model.SetLayerSolo(eventID, layerID, v.Bool)
	case ParamBus:
		s.model.SetLayerBus(eventID, layerID, kaiku.Bus(v.Int).ID())
	default:
		return false
	}
	return true
}

func (s *Sync) ClipParam(id string, p Param, v ParamValue) bool {
	release, ok := s.begin(stateApplyingReverse)
	if !ok {
		return false
	}
	defer release()
	eventID, layerID, ok := ParseLayerClipID(id)
	if !ok {
		return false
	}
	switch p {
	case ParamStartTime:
		s.model.SetLayerOffsetMs(eventID, layerID, v.Float*1000)
	case ParamFadeIn:
		s.model.SetLayerFadeInMs(eventID, layerID, v.Float*1000)
	case ParamFadeOut:
		s.model.SetLayerFadeOutMs(eventID, layerID, v.Float*1000)
	case ParamSourceOffset:
		s.model.SetLayerTrimStartMs(eventID, layerID, v.Float*1000)
	case ParamDuration:
		s.model.SetLayerDuration(eventID, layerID, v.Float)
	case ParamLoop:
		s.model.SetLayerLoop(eventID, layerID, v.Bool)
	case ParamMute:
		s.model.SetLayerMuted(eventID, layerID, v.Bool)
	default:
		return false
	}
	return true
}
