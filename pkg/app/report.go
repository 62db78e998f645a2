package app

import (
	"errors"
	"io"

	"tableflip.dev/diario/pkg/notify"
)

// Report drains the queued notifications. The newest error becomes the
// returned error; the others are printed to out when it is not nil.
func (a *App) Report(out io.Writer) error {
	var failed error
	var p *notify.Printer
	if out != nil {
		p = &notify.Printer{Out: out}
	}
	for _, n := range a.Toasts.Drain() {
		if n.Severity == notify.Error {
			failed = errors.New(n.Message)
			continue
		}
		if p != nil {
			p.Notify(n)
		}
	}
	return failed
}
