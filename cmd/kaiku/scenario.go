package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/mkantola/kaiku"
	"github.com/mkantola/kaiku/studio"
)

type (
	// Scenario is a scripted bridge session: an initial event set followed
	// by steps that mutate either side, the way the authoring UI and the
	// DAW UI would.
	Scenario struct {
		Name   string        `yaml:",omitempty"`
		Events []kaiku.Event `yaml:",omitempty"`
		Steps  []Step        `yaml:",omitempty"`
	}

	// Step is one scripted mutation; exactly one field should be set.
	Step struct {
		AddEvent    *kaiku.Event `yaml:"addEvent,omitempty"`
		UpdateEvent *kaiku.Event `yaml:"updateEvent,omitempty"`
		RemoveEvent string       `yaml:"removeEvent,omitempty"`
		TrackEdit   *ParamEdit   `yaml:"trackEdit,omitempty"`
		ClipEdit    *ParamEdit   `yaml:"clipEdit,omitempty"`
	}

	// ParamEdit simulates a DAW-side parameter write. Param uses the
	// recognized parameter names (volume, pan, mute, solo, bus for tracks;
	// startTime, fadeIn, fadeOut, sourceOffset, duration, loop, mute for
	// clips); the value comes from the field matching the parameter type.
	ParamEdit struct {
		ID    string  `yaml:"id"`
		Param string  `yaml:"param"`
		Float float64 `yaml:"float,omitempty"`
		Bool  bool    `yaml:"bool,omitempty"`
		Bus   int     `yaml:"bus,omitempty"`
	}

	// Dump is what sim prints after the scenario ran.
	Dump struct {
		Scenario     string             `yaml:",omitempty"`
		Tracks       []kaiku.Track      `yaml:",omitempty"`
		Clips        []kaiku.Clip       `yaml:",omitempty"`
		EngineTracks int                `yaml:"engineTracks"`
		Batches      []studio.SyncBatch `yaml:",omitempty"`
		Alerts       []string           `yaml:",omitempty"`
	}
)

// ReadScenario parses a scenario file, trying JSON first and falling back
// to YAML.
func ReadScenario(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	var sc Scenario
	if errJSON := json.Unmarshal(b, &sc); errJSON != nil {
		if errYaml := yaml.Unmarshal(b, &sc); errYaml != nil {
			return Scenario{}, fmt.Errorf("scenario is neither JSON nor YAML: %v / %v", errYaml, errJSON)
		}
	}
	return sc, nil
}

func (r *Runner) Sim(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("expected exactly one scenario file")
	}
	config, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	if level, err := log.ParseLevel(config.Log.Level); err == nil {
		r.logger.SetLevel(level)
	}
	sc, err := ReadScenario(cmd.Args().First())
	if err != nil {
		return err
	}

	model := studio.NewModel()
	timeline := studio.NewTimeline()
	var registry studio.Registry
	stub := studio.NewStubRegistry(r.logger.With("component", "engine"))
	if config.Engine.Enabled {
		registry = stub
	} else {
		registry = studio.NullRegistry{}
	}
	bridge := studio.NewSync(model, timeline, registry, r.logger.With("component", "sync"))
	defer bridge.Close()
	bridge.SetTrackColor(config.Engine.TrackColor)

	var batches []studio.SyncBatch
	if cmd.Bool("batches") {
		bridge.SetApply(func(b studio.SyncBatch) error {
			batches = append(batches, b)
			for _, id := range b.ClipIDsToRemove {
				timeline.RemoveClip(id)
			}
			for _, id := range b.TrackIDsToRemove {
				timeline.RemoveTrack(id)
			}
			for _, t := range b.TracksToAdd {
				timeline.AddTrack(t)
			}
			for _, c := range b.ClipsToAdd {
				timeline.AddClip(c)
			}
			return nil
		})
	}

	model.SetEvents(sc.Events)
	for i, step := range sc.Steps {
		if err := runStep(model, timeline, step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	dump := Dump{
		Scenario:     sc.Name,
		Tracks:       timeline.Tracks(),
		Clips:        timeline.Clips(),
		EngineTracks: stub.TrackCount(),
		Batches:      batches,
	}
	for alert := range model.Alerts().Iterate {
		dump.Alerts = append(dump.Alerts, alert.Message)
	}

	var out []byte
	if cmd.Bool("json") {
		out, err = json.MarshalIndent(dump, "", "  ")
	} else {
		out, err = yaml.Marshal(dump)
	}
	if err != nil {
		return fmt.Errorf("could not marshal dump: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runStep(model *studio.Model, timeline *studio.Timeline, step Step) error {
	switch {
	case step.AddEvent != nil:
		model.AppendEvent(*step.AddEvent)
		return nil
	case step.UpdateEvent != nil:
		model.SetEvent(*step.UpdateEvent)
		return nil
	case step.RemoveEvent != "":
		model.DeleteEvent(step.RemoveEvent)
		return nil
	case step.TrackEdit != nil:
		return applyTrackEdit(timeline, *step.TrackEdit)
	case step.ClipEdit != nil:
		return applyClipEdit(timeline, *step.ClipEdit)
	}
	return errors.New("empty step")
}

func applyTrackEdit(tl *studio.Timeline, e ParamEdit) error {
	switch e.Param {
	case "volume":
		tl.TrackVolume(e.ID).Set(e.Float)
	case "pan":
		tl.TrackPan(e.ID).Set(e.Float)
	case "mute":
		tl.TrackMute(e.ID).Set(e.Bool)
	case "solo":
		tl.TrackSolo(e.ID).Set(e.Bool)
	case "bus":
		tl.TrackBus(e.ID).Set(e.Bus)
	default:
		return fmt.Errorf("unknown track parameter %q", e.Param)
	}
	return nil
}

func applyClipEdit(tl *studio.Timeline, e ParamEdit) error {
	switch e.Param {
	case "startTime":
		tl.ClipStart(e.ID).Set(e.Float)
	case "fadeIn":
		tl.ClipFadeIn(e.ID).Set(e.Float)
	case "fadeOut":
		tl.ClipFadeOut(e.ID).Set(e.Float)
	case "sourceOffset":
		tl.ClipSourceOffset(e.ID).Set(e.Float)
	case "duration":
		tl.ClipDuration(e.ID).Set(e.Float)
	case "loop":
		tl.ClipLoop(e.ID).Set(e.Bool)
	case "mute":
		tl.ClipMute(e.ID).Set(e.Bool)
	default:
		return fmt.Errorf("unknown clip parameter %q", e.Param)
	}
	return nil
}
