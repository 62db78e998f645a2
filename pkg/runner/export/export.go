// Package export dumps the three journal collections.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/printers"
)

// Document is the exported journal, in the stored shape.
type Document struct {
	ExportedAt time.Time                     `json:"exportedAt"`
	Tasks      []*entry.Task                 `json:"tasks"`
	Events     map[daykey.Key][]*entry.Event `json:"events"`
	Emotions   []*entry.Emotion              `json:"emotions"`
}

// Export writes a Document to File, or to Out when File is empty.
type Export struct {
	App    *app.App
	Format printers.Format
	File   string
	Out    io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not export, no journal")
	}
	st := n.App.Journal.State()
	doc := Document{
		ExportedAt: n.App.Journal.Now(),
		Tasks:      st.Tasks,
		Events:     st.Events,
		Emotions:   st.Emotions,
	}

	if n.File == "" {
		out := n.Out
		if out == nil {
			out = color.Output
		}
		return printers.Encode(out, n.Format, doc)
	}

	f, err := os.Create(n.File)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := printers.Encode(f, n.Format, doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: %w", err)
	}
	return f.Close()
}
