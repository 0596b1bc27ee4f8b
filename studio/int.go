package studio

import "github.com/mkantola/kaiku"

type (
	Int struct {
		IntData
	}

	IntData interface {
		Value() int
		Range() intRange
		setValue(int)
	}

	intRange struct {
		Min, Max int
	}

	trackBus struct {
		tl *Timeline
		id string
	}
)

func (v Int) Add(delta int) (ok bool) {
	return v.Set(v.Value() + delta)
}

func (v Int) Set(value int) (ok bool) {
	r := v.Range()
	value = r.Clamp(value)
	if value == v.Value() {
		return false
	}
	v.setValue(value)
	return true
}

func (r intRange) Clamp(value int) int {
	return max(min(value, r.Max), r.Min)
}

// Timeline methods

// TrackBus is the output bus of a track as the bus enum value.
func (tl *Timeline) TrackBus(id string) Int { return Int{trackBus{tl, id}} }

// trackBus methods

func (v trackBus) Value() int {
	t, _ := v.tl.Track(v.id)
	return int(t.Output)
}
func (v trackBus) setValue(value int) {
	v.tl.setTrackParam(v.id, ParamBus, ParamValue{Int: value})
}
func (v trackBus) Range() intRange { return intRange{0, kaiku.NumBuses - 1} }
