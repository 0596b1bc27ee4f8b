package studio

import "math"

type (
	Float struct {
		FloatData
	}

	FloatData interface {
		Value() float64
		Range() floatRange
		setValue(float64)
	}

	floatRange struct {
		Min, Max float64
	}

	trackVolume struct {
		tl *Timeline
		id string
	}
	trackPan struct {
		tl *Timeline
		id string
	}
	clipStart struct {
		tl *Timeline
		id string
	}
	clipFadeIn struct {
		tl *Timeline
		id string
	}
	clipFadeOut struct {
		tl *Timeline
		id string
	}
	clipSourceOffset struct {
		tl *Timeline
		id string
	}
	clipDuration struct {
		tl *Timeline
		id string
	}
)

func (v Float) Set(value float64) (ok bool) {
	r := v.Range()
	value = r.Clamp(value)
	if value == v.Value() {
		return false
	}
	v.setValue(value)
	return true
}

func (r floatRange) Clamp(value float64) float64 {
	return math.Max(math.Min(value, r.Max), r.Min)
}

// Timeline methods

func (tl *Timeline) TrackVolume(id string) Float      { return Float{trackVolume{tl, id}} }
func (tl *Timeline) TrackPan(id string) Float         { return Float{trackPan{tl, id}} }
func (tl *Timeline) ClipStart(id string) Float        { return Float{clipStart{tl, id}} }
func (tl *Timeline) ClipFadeIn(id string) Float       { return Float{clipFadeIn{tl, id}} }
func (tl *Timeline) ClipFadeOut(id string) Float      { return Float{clipFadeOut{tl, id}} }
func (tl *Timeline) ClipSourceOffset(id string) Float { return Float{clipSourceOffset{tl, id}} }
func (tl *Timeline) ClipDuration(id string) Float     { return Float{clipDuration{tl, id}} }

// trackVolume methods

func (v trackVolume) Value() float64 {
	t, _ := v.tl.Track(v.id)
	return t.Volume
}
func (v trackVolume) setValue(value float64) {
	v.tl.setTrackParam(v.id, ParamVolume, ParamValue{Float: value})
}
func (v trackVolume) Range() floatRange { return floatRange{0, 2} }

// trackPan methods

func (v trackPan) Value() float64 {
	t, _ := v.tl.Track(v.id)
	return t.Pan
}
func (v trackPan) setValue(value float64) {
	v.tl.setTrackParam(v.id, ParamPan, ParamValue{Float: value})
}
func (v trackPan) Range() floatRange { return floatRange{-1, 1} }

// clipStart methods

func (v clipStart) Value() float64 {
	c, _ := v.tl.Clip(v.id)
	return c.StartTime
}
func (v clipStart) setValue(value float64) {
	v.tl.setClipParam(v.id, ParamStartTime, ParamValue{Float: value})
}
func (v clipStart) Range() floatRange { return floatRange{0, math.MaxFloat64} }

// clipFadeIn methods

func (v clipFadeIn) Value() float64 {
	c, _ := v.tl.Clip(v.id)
	return c.FadeIn
}
func (v clipFadeIn) setValue(value float64) {
	v.tl.setClipParam(v.id, ParamFadeIn, ParamValue{Float: value})
}
func (v clipFadeIn) Range() floatRange { return floatRange{0, math.MaxFloat64} }

// clipFadeOut methods

func (v clipFadeOut) Value() float64 {
	c, _ := v.tl.Clip(v.id)
	return c.FadeOut
}
func (v clipFadeOut) setValue(value float64) {
	v.tl.setClipParam(v.id, ParamFadeOut, ParamValue{Float: value})
}
func (v clipFadeOut) Range() floatRange { return floatRange{0, math.MaxFloat64} }

// clipSourceOffset methods

func (v clipSourceOffset) Value() float64 {
	c, _ := v.tl.Clip(v.id)
	return c.SourceOffset
}
func (v clipSourceOffset) setValue(value float64) {
	v.tl.setClipParam(v.id, ParamSourceOffset, ParamValue{Float: value})
}
func (v clipSourceOffset) Range() floatRange { return floatRange{0, math.MaxFloat64} }

// clipDuration methods

func (v clipDuration) Value() float64 {
	c, _ := v.tl.Clip(v.id)
	return c.Duration
}
func (v clipDuration) setValue(value float64) {
	v.tl.setClipParam(v.id, ParamDuration, ParamValue{Float: value})
}
func (v clipDuration) Range() floatRange { return floatRange{0, math.MaxFloat64} }
