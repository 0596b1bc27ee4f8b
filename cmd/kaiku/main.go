// Command kaiku is the headless harness for the kaiku middleware/DAW
// synchronization bridge: it drives scenario files through the event
// model, the bridge and the timeline, and dumps the result. The GUI
// front-end lives elsewhere; this tool exists for development and CI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/mkantola/kaiku"
	"github.com/mkantola/kaiku/version"
)

type Runner struct {
	logger *log.Logger
}

func NewRunner() *Runner {
	opts := log.Options{ReportTimestamp: true}
	return &Runner{logger: log.NewWithOptions(os.Stderr, opts)}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "kaiku.toml",
	}
}

func simCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "sim",
		Usage:     "Run a scenario file through the sync bridge and dump the resulting timeline",
		ArgsUsage: "<scenario file>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output JSON instead of YAML",
			},
			&cli.BoolFlag{
				Name:  "batches",
				Usage: "Include every emitted sync batch in the output",
			},
		},
		Action: r.Sim,
	}
}

func busesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "buses",
		Usage:  "Print the middleware bus id to timeline output bus mapping",
		Action: r.Buses,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(version.VersionOrHash)
			return nil
		},
	}
}

func (r *Runner) Buses(ctx context.Context, cmd *cli.Command) error {
	for id := 0; id < kaiku.NumBuses; id++ {
		fmt.Printf("%d\t%s\n", id, kaiku.BusForID(id))
	}
	return nil
}

func main() {
	r := NewRunner()
	app := &cli.Command{
		Name:  "kaiku",
		Usage: "Headless harness for the kaiku middleware/DAW sync bridge",
		Commands: []*cli.Command{
			simCommand(r),
			busesCommand(r),
			versionCommand(),
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		r.logger.Fatal(err)
	}
}
