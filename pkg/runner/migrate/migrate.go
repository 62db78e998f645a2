// Package migrate rolls today's open tasks over to tomorrow.
package migrate

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/printers"
)

type Migrate struct {
	App  *app.App
	JSON bool
	Out  io.Writer
}

func (n *Migrate) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not migrate, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	migrated := n.App.Journal.MigrateTasks()
	if n.JSON {
		if err := n.App.Report(nil); err != nil {
			return err
		}
		return printers.JSON(out, map[string]int{"migrated": migrated})
	}
	return n.App.Report(out)
}
