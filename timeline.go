package kaiku

type (
	// TrackType tells whether a timeline track holds audio clips or acts
	// as a folder bus for a group of child tracks.
	TrackType string

	// Track is one track in the DAW timeline view. Folder tracks group
	// their children and carry no clips; audio tracks belong to at most
	// one folder and carry the clips placed on them.
	Track struct {
		ID             string    `yaml:"id"`
		Name           string    `yaml:"name"`
		Type           TrackType `yaml:"type"`
		ParentFolder   string    `yaml:"parentFolder,omitempty"`
		Children       []string  `yaml:"children,flow,omitempty"`
		Volume         float64   `yaml:"volume"`
		Pan            float64   `yaml:"pan,omitempty"`
		Muted          bool      `yaml:"muted,omitempty"`
		Soloed         bool      `yaml:"soloed,omitempty"`
		Output         Bus       `yaml:"output"`
		FolderExpanded bool      `yaml:"folderExpanded,omitempty"`
	}

	// Clip is one piece of audio placed on a timeline track. All times are
	// in seconds. EventID back-references the middleware event a bridged
	// clip was generated from; it is empty for clips the user placed by
	// hand.
	Clip struct {
		ID           string    `yaml:"id"`
		TrackID      string    `yaml:"trackId"`
		Name         string    `yaml:"name,omitempty"`
		StartTime    float64   `yaml:"startTime"`
		Duration     float64   `yaml:"duration"`
		SourceFile   string    `yaml:"sourceFile,omitempty"`
		Waveform     []float32 `yaml:"waveform,flow,omitempty"`
		FadeIn       float64   `yaml:"fadeIn,omitempty"`
		FadeOut      float64   `yaml:"fadeOut,omitempty"`
		SourceOffset float64   `yaml:"sourceOffset,omitempty"`
		EventID      string    `yaml:"eventId,omitempty"`
		LoopEnabled  bool      `yaml:"loopEnabled,omitempty"`
	}
)

const (
	TrackAudio  TrackType = "audio"
	TrackFolder TrackType = "folder"
)

func (t Track) Copy() Track {
	ret := t
	if t.Children != nil {
		ret.Children = make([]string, len(t.Children))
		copy(ret.Children, t.Children)
	}
	return ret
}

func (c Clip) Copy() Clip {
	ret := c
	if c.Waveform != nil {
		ret.Waveform = make([]float32, len(c.Waveform))
		copy(ret.Waveform, c.Waveform)
	}
	return ret
}
