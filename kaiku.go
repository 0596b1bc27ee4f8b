// Package kaiku contains the domain value types of the kaiku audio
// authoring suite: middleware-style composite events with their layered
// sound sources, and the DAW-style timeline tracks and clips they are
// mirrored to. The types here are plain values with deep Copy methods;
// all mutable state and the synchronization bridge between the two models
// live in the studio package.
package kaiku

type (
	// Bus identifies one of the fixed mixer output buses. The numeric
	// values double as the middleware-side bus ids, so the conversion
	// tables below are the compatibility contract, not an identity to be
	// relied on.
	Bus int
)

const (
	BusMaster Bus = iota
	BusMusic
	BusSfx
	BusVoice
	BusAmbience

	NumBuses = 5
)

// busForID is the fixed forward table from middleware bus ids to timeline
// output buses. Unknown ids fall back to the master bus.
var busForID = map[int]Bus{
	0: BusMaster,
	1: BusMusic,
	2: BusSfx,
	3: BusVoice,
	4: BusAmbience,
}

var busNames = [NumBuses]string{"master", "music", "sfx", "voice", "ambience"}

// BusForID maps a middleware bus id to a timeline output bus, defaulting
// to BusMaster for ids outside the table.
func BusForID(id int) Bus {
	if b, ok := busForID[id]; ok {
		return b
	}
	return BusMaster
}

// ID converts an output bus back to the middleware bus id; the inverse of
// BusForID for every bus in the table.
func (b Bus) ID() int {
	for id, bus := range busForID {
		if bus == b {
			return id
		}
	}
	return 0
}

func (b Bus) String() string {
	if b < 0 || int(b) >= len(busNames) {
		return "master"
	}
	return busNames[b]
}

// BusByName returns the bus with the given display name, ok being false
// when the name is not one of the five fixed buses.
func BusByName(name string) (Bus, bool) {
	for i, n := range busNames {
		if n == name {
			return Bus(i), true
		}
	}
	return BusMaster, false
}
