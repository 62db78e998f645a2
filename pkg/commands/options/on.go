package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/daykey"
)

const layoutShort = "1/2"

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2020-02-28" or --on="2/28".`)
}

// GetOn returns the day key for --on, or "" when it is not set.
func (o *OnOptions) GetOn(now time.Time) (daykey.Key, error) {
	if o.OnString == "" {
		return "", nil
	}
	if k, err := daykey.Parse(o.OnString); err == nil {
		return k, nil
	}
	t, err := time.ParseInLocation(layoutShort, o.OnString, now.Location())
	if err != nil {
		return "", err
	}
	t = t.AddDate(now.Year(), 0, 0)
	// Assume 1/3 said on 12/5 means next year, not 11 months ago.
	if daykey.For(t).Before(daykey.Today(now)) {
		t = t.AddDate(1, 0, 0)
	}
	return daykey.For(t), nil
}
