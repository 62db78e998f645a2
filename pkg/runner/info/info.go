// Package info reports where the journal lives and what it holds.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/config"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/printers"
)

// Summary is the machine readable form of Info.
type Summary struct {
	ConfigFile string `json:"configFile"`
	Path       string `json:"path"`
	Driver     string `json:"driver"`
	LogFile    string `json:"logFile"`
	Reminder   string `json:"reminder"`
	Tasks      int    `json:"tasks"`
	Events     int    `json:"events"`
	Emotions   int    `json:"emotions"`
}

type Info struct {
	App  *app.App
	JSON bool
	Out  io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not report, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	cfg := n.App.Config
	st := n.App.Journal.State()
	s := Summary{
		ConfigFile: cfg.File,
		Path:       cfg.Path,
		Driver:     string(cfg.Driver),
		LogFile:    cfg.LogFile(),
		Reminder:   "off",
		Tasks:      len(st.Tasks),
		Events:     entry.CountEvents(st.Events),
		Emotions:   len(st.Emotions),
	}
	if cfg.Reminder.Enabled {
		s.Reminder = fmt.Sprintf("%02d:%02d", cfg.Reminder.Hour, cfg.Reminder.Minute)
	}
	if n.JSON {
		return printers.JSON(out, s)
	}

	if override := os.Getenv(config.PathOverrideEnv); override != "" {
		_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", config.PathOverrideEnv, override)
	} else {
		_, _ = fmt.Fprintf(out, "%s env var not set\n", config.PathOverrideEnv)
	}

	configFile := s.ConfigFile
	if configFile == "" {
		configFile = "(defaults)"
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("config"), configFile)
	tbl.AddRow(bold.Sprint("path"), s.Path)
	tbl.AddRow(bold.Sprint("driver"), s.Driver)
	tbl.AddRow(bold.Sprint("log"), s.LogFile)
	tbl.AddRow(bold.Sprint("reminder"), s.Reminder)
	tbl.AddRow(bold.Sprint("tasks"), s.Tasks)
	tbl.AddRow(bold.Sprint("events"), s.Events)
	tbl.AddRow(bold.Sprint("emotions"), s.Emotions)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
