package kaiku_test

import (
	"testing"

	"github.com/mkantola/kaiku"
)

func TestBusForID(t *testing.T) {
	want := map[int]kaiku.Bus{
		0: kaiku.BusMaster,
		1: kaiku.BusMusic,
		2: kaiku.BusSfx,
		3: kaiku.BusVoice,
		4: kaiku.BusAmbience,
	}
	for id, bus := range want {
		if got := kaiku.BusForID(id); got != bus {
			t.Errorf("BusForID(%d) = %v, want %v", id, got, bus)
		}
		if got := bus.ID(); got != id {
			t.Errorf("%v.ID() = %d, want %d", bus, got, id)
		}
	}
	// unknown ids fall back to master
	for _, id := range []int{-1, 5, 99} {
		if got := kaiku.BusForID(id); got != kaiku.BusMaster {
			t.Errorf("BusForID(%d) = %v, want master", id, got)
		}
	}
}

func TestBusNames(t *testing.T) {
	names := map[kaiku.Bus]string{
		kaiku.BusMaster:   "master",
		kaiku.BusMusic:    "music",
		kaiku.BusSfx:      "sfx",
		kaiku.BusVoice:    "voice",
		kaiku.BusAmbience: "ambience",
	}
	for bus, name := range names {
		if got := bus.String(); got != name {
			t.Errorf("%d.String() = %q, want %q", int(bus), got, name)
		}
		if got, ok := kaiku.BusByName(name); !ok || got != bus {
			t.Errorf("BusByName(%q) = %v, %v", name, got, ok)
		}
	}
	if kaiku.Bus(17).String() != "master" {
		t.Error("out-of-range bus does not display as master")
	}
	if _, ok := kaiku.BusByName("aux"); ok {
		t.Error("BusByName accepted an unknown name")
	}
}

func TestEventCopyIsDeep(t *testing.T) {
	bus := 2
	duration := 1.5
	orig := kaiku.Event{
		ID:            "E1",
		Name:          "BigWin",
		MasterVolume:  1,
		TriggerStages: []string{"intro"},
		Layers: []kaiku.Layer{{
			ID:              "L1",
			Bus:             &bus,
			DurationSeconds: &duration,
			Waveform:        []float32{0.1, 0.2},
		}},
	}

	cp := orig.Copy()
	cp.TriggerStages[0] = "outro"
	cp.Layers[0].ID = "changed"
	*cp.Layers[0].Bus = 4
	*cp.Layers[0].DurationSeconds = 9
	cp.Layers[0].Waveform[0] = -1

	if orig.TriggerStages[0] != "intro" {
		t.Error("trigger stages shared")
	}
	if orig.Layers[0].ID != "L1" {
		t.Error("layers shared")
	}
	if *orig.Layers[0].Bus != 2 {
		t.Error("bus pointer shared")
	}
	if *orig.Layers[0].DurationSeconds != 1.5 {
		t.Error("duration pointer shared")
	}
	if orig.Layers[0].Waveform[0] != 0.1 {
		t.Error("waveform shared")
	}
}

func TestTrackCopyIsDeep(t *testing.T) {
	orig := kaiku.Track{
		ID:       "t1",
		Type:     kaiku.TrackFolder,
		Children: []string{"a", "b"},
	}
	cp := orig.Copy()
	cp.Children[0] = "x"
	if orig.Children[0] != "a" {
		t.Error("children shared")
	}
}

func TestClipCopyIsDeep(t *testing.T) {
	orig := kaiku.Clip{ID: "c1", Waveform: []float32{0.5}}
	cp := orig.Copy()
	cp.Waveform[0] = -0.5
	if orig.Waveform[0] != 0.5 {
		t.Error("waveform shared")
	}
}
