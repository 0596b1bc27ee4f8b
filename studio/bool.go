package studio

type (
	Bool struct {
		BoolData
	}

	BoolData interface {
		Value() bool
		Enabled() bool
		setValue(bool)
	}

	trackMute struct {
		tl *Timeline
		id string
	}
	trackSolo struct {
		tl *Timeline
		id string
	}
	clipLoop struct {
		tl *Timeline
		id string
	}
	clipMute struct {
		tl *Timeline
		id string
	}
)

func (v Bool) Toggle() {
	v.Set(!v.Value())
}

func (v Bool) Set(value bool) {
	if v.Enabled() && v.Value() != value {
		v.setValue(value)
	}
}

// Timeline methods

func (tl *Timeline) TrackMute(id string) Bool { return Bool{trackMute{tl, id}} }
func (tl *Timeline) TrackSolo(id string) Bool { return Bool{trackSolo{tl, id}} }
func (tl *Timeline) ClipLoop(id string) Bool  { return Bool{clipLoop{tl, id}} }
func (tl *Timeline) ClipMute(id string) Bool  { return Bool{clipMute{tl, id}} }

// trackMute methods

func (v trackMute) Value() bool {
	t, _ := v.tl.Track(v.id)
	return t.Muted
}
func (v trackMute) setValue(value bool) {
	v.tl.setTrackParam(v.id, ParamMute, ParamValue{Bool: value})
}
func (v trackMute) Enabled() bool { return v.tl.trackIndex(v.id) >= 0 }

// trackSolo methods

func (v trackSolo) Value() bool {
	t, _ := v.tl.Track(v.id)
	return t.Soloed
}
func (v trackSolo) setValue(value bool) {
	v.tl.setTrackParam(v.id, ParamSolo, ParamValue{Bool: value})
}
func (v trackSolo) Enabled() bool { return v.tl.trackIndex(v.id) >= 0 }

// clipLoop methods

func (v clipLoop) Value() bool {
	c, _ := v.tl.Clip(v.id)
	return c.LoopEnabled
}
func (v clipLoop) setValue(value bool) {
	v.tl.setClipParam(v.id, ParamLoop, ParamValue{Bool: value})
}
func (v clipLoop) Enabled() bool { return v.tl.clipIndex(v.id) >= 0 }

// clipMute methods

func (v clipMute) Value() bool {
	c, ok := v.tl.Clip(v.id)
	if !ok {
		return false
	}
	t, _ := v.tl.Track(c.TrackID)
	return t.Muted
}
func (v clipMute) setValue(value bool) {
	v.tl.setClipParam(v.id, ParamMute, ParamValue{Bool: value})
}
func (v clipMute) Enabled() bool { return v.tl.clipIndex(v.id) >= 0 }
