package kaiku

type (
	// Event is one composite audio event authored in the middleware view:
	// a named, independently mixed group of layered sound sources that the
	// game triggers as a unit. Events are mutated only through the studio
	// model, never in place.
	Event struct {
		ID            string   `yaml:"id"`
		Name          string   `yaml:"name"`
		MasterVolume  float64  `yaml:"masterVolume"`
		TriggerStages []string `yaml:"triggerStages,flow,omitempty"`
		Layers        []Layer  `yaml:"layers"`
	}

	// Layer is a single sound source within an Event, with its own file,
	// mix settings and timing. Times are kept in milliseconds on this side
	// of the bridge; the timeline side works in seconds.
	Layer struct {
		ID          string  `yaml:"id"`
		Name        string  `yaml:"name,omitempty"`
		AudioPath   string  `yaml:"audioPath,omitempty"`
		Volume      float64 `yaml:"volume"`
		Pan         float64 `yaml:"pan,omitempty"`
		OffsetMs    float64 `yaml:"offsetMs,omitempty"`
		FadeInMs    float64 `yaml:"fadeInMs,omitempty"`
		FadeOutMs   float64 `yaml:"fadeOutMs,omitempty"`
		TrimStartMs float64 `yaml:"trimStartMs,omitempty"`
		TrimEndMs   float64 `yaml:"trimEndMs,omitempty"`
		Muted       bool    `yaml:"muted,omitempty"`
		Solo        bool    `yaml:"solo,omitempty"`
		Loop        bool    `yaml:"loop,omitempty"`

		// Bus is the middleware bus id (0 = master .. 4 = ambience), nil
		// when the layer has never been routed explicitly.
		Bus *int `yaml:"bus,omitempty"`

		// DurationSeconds is the decoded length of the source file, nil
		// until the engine has reported it.
		DurationSeconds *float64 `yaml:"durationSeconds,omitempty"`

		// Waveform is an optional overview of the source samples, kept
		// only for display.
		Waveform []float32 `yaml:"waveform,flow,omitempty"`
	}
)

func (e Event) Copy() Event {
	stages := make([]string, len(e.TriggerStages))
	copy(stages, e.TriggerStages)
	layers := make([]Layer, len(e.Layers))
	for i, l := range e.Layers {
		layers[i] = l.Copy()
	}
	return Event{ID: e.ID, Name: e.Name, MasterVolume: e.MasterVolume, TriggerStages: stages, Layers: layers}
}

func (l Layer) Copy() Layer {
	ret := l
	if l.Bus != nil {
		bus := *l.Bus
		ret.Bus = &bus
	}
	if l.DurationSeconds != nil {
		dur := *l.DurationSeconds
		ret.DurationSeconds = &dur
	}
	if l.Waveform != nil {
		ret.Waveform = make([]float32, len(l.Waveform))
		copy(ret.Waveform, l.Waveform)
	}
	return ret
}
