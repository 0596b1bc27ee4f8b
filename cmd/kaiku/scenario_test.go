package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkantola/kaiku"
	"github.com/mkantola/kaiku/studio"
)

func TestReadScenarioYAML(t *testing.T) {
	sc, err := ReadScenario(filepath.Join("testdata", "bigwin.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "bigwin" {
		t.Errorf("name = %q", sc.Name)
	}
	if len(sc.Events) != 1 || sc.Events[0].ID != "E1" {
		t.Fatalf("events = %+v", sc.Events)
	}
	e := sc.Events[0]
	if e.MasterVolume != 1 || len(e.TriggerStages) != 2 || e.TriggerStages[0] != "win_intro" {
		t.Errorf("event fields = %+v", e)
	}
	if len(e.Layers) != 2 {
		t.Fatalf("layers = %d", len(e.Layers))
	}
	if l := e.Layers[0]; l.AudioPath != "sfx/fanfare.wav" || l.OffsetMs != 250 || l.Bus == nil || *l.Bus != 0 {
		t.Errorf("layer 1 = %+v", l)
	}
	if len(sc.Steps) != 4 {
		t.Fatalf("steps = %d", len(sc.Steps))
	}
	if sc.Steps[0].TrackEdit == nil || sc.Steps[0].TrackEdit.Param != "volume" {
		t.Errorf("step 1 = %+v", sc.Steps[0])
	}
	if sc.Steps[3].RemoveEvent != "E1" {
		t.Errorf("step 4 = %+v", sc.Steps[3])
	}
}

func TestReadScenarioJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sc.json")
	data := `{"name": "json", "events": [{"id": "E1", "name": "spin", "masterVolume": 1}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := ReadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "json" || len(sc.Events) != 1 || sc.Events[0].MasterVolume != 1 {
		t.Errorf("scenario = %+v", sc)
	}
}

func TestReadScenarioGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sc.yaml")
	if err := os.WriteFile(path, []byte("\t{not valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadScenario(path); err == nil {
		t.Error("no error for an unparseable file")
	}
	if _, err := ReadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestScenarioRunsEndToEnd(t *testing.T) {
	sc, err := ReadScenario(filepath.Join("testdata", "bigwin.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	model := studio.NewModel()
	timeline := studio.NewTimeline()
	bridge := studio.NewSync(model, timeline, studio.NewStubRegistry(nil), nil)
	defer bridge.Close()

	model.SetEvents(sc.Events)
	for i, step := range sc.Steps {
		if err := runStep(model, timeline, step); err != nil {
			t.Fatalf("step %d: %v", i+1, err)
		}
	}

	// E1 was removed by the last step; E2 was added mid-run
	if _, ok := timeline.Track("mw_folder_E1"); ok {
		t.Error("E1 folder survived its removal")
	}
	if _, ok := timeline.Track("mw_track_E2__L1"); !ok {
		t.Error("E2 layer track missing")
	}
	if track, ok := timeline.Track("mw_track_E2__L1"); !ok || track.Output != kaiku.BusMusic {
		t.Errorf("E2 output = %+v", track.Output)
	}
	if len(model.Events()) != 1 || model.Events()[0].ID != "E2" {
		t.Errorf("events = %+v", model.Events())
	}
}

func TestStepErrors(t *testing.T) {
	model := studio.NewModel()
	timeline := studio.NewTimeline()

	if err := runStep(model, timeline, Step{}); err == nil {
		t.Error("empty step accepted")
	}
	if err := applyTrackEdit(timeline, ParamEdit{ID: "t", Param: "gain"}); err == nil {
		t.Error("unknown track parameter accepted")
	}
	if err := applyClipEdit(timeline, ParamEdit{ID: "c", Param: "speed"}); err == nil {
		t.Error("unknown clip parameter accepted")
	}
}
