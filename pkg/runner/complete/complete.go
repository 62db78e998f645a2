// Package complete provides the runner logic for toggling tasks done.
package complete

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/printers"
	"tableflip.dev/diario/pkg/view"
)

// Complete flips the completed flag of each task in IDs. An id may be
// shortened to any unique prefix.
type Complete struct {
	App  *app.App
	IDs  []string
	JSON bool
	Out  io.Writer
}

// Do toggles the tasks and prints the resulting lists.
func (n *Complete) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not complete, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	svc := n.App.Journal

	for _, raw := range n.IDs {
		id, err := Resolve(svc.State(), raw)
		if err != nil {
			return err
		}
		svc.ToggleCompletion(id)
	}

	lists := view.Tasks(svc.State())
	if n.JSON {
		return printers.JSON(out, lists)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: out}
	pp.NewLine()
	pp.Tasks(lists)
	return nil
}

// Resolve expands a task id prefix to the full id.
func Resolve(st *journal.State, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", errors.New("empty task id")
	}
	if _, ok := st.Task(prefix); ok {
		return prefix, nil
	}
	var found []string
	for _, t := range st.Tasks {
		if strings.HasPrefix(t.ID, prefix) {
			found = append(found, t.ID)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no task with id %q", prefix)
	case 1:
		return found[0], nil
	}
	return "", fmt.Errorf("id %q matches %d tasks", prefix, len(found))
}
