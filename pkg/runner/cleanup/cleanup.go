// Package cleanup removes completed tasks after confirmation.
package cleanup

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/printers"
)

// Clear asks Confirmer before removing the completed tasks. A nil Confirmer
// declines.
type Clear struct {
	App       *app.App
	Confirmer journal.Confirmer
	JSON      bool
	Out       io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not clear, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	svc := n.App.Journal
	svc.SetConfirmer(n.Confirmer)
	defer svc.SetConfirmer(nil)

	cleared := svc.ClearCompletedTasks()
	if n.JSON {
		if err := n.App.Report(nil); err != nil {
			return err
		}
		return printers.JSON(out, map[string]int{"cleared": cleared})
	}
	return n.App.Report(out)
}
