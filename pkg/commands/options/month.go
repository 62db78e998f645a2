package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// MonthOptions
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Show another month, example: --month=2024-2.`)
}

// GetMonth returns the first day of --month, or the zero time when it is
// not set.
func (o *MonthOptions) GetMonth(loc *time.Location) (time.Time, error) {
	if o.MonthString == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-1", o.MonthString, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, want YEAR-MONTH", o.MonthString)
	}
	return t, nil
}
