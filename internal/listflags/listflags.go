// Package listflags provides the shared view-selection flags for listing
// commands.
package listflags

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasknest/tasknest/view"
)

// ViewFlags holds the values of the shared view-selection flags.
type ViewFlags struct {
	View   string
	Active bool
	All    bool
}

// AddViewFlags registers --view, --active, and --all on a listing command.
func AddViewFlags(cmd *cobra.Command, target *ViewFlags) {
	cmd.Flags().StringVar(&target.View, "view", "", "View to list (ACTIVE, NON_CLEAR, ALL)")
	cmd.Flags().BoolVar(&target.Active, "active", false, "Shorthand for --view ACTIVE")
	cmd.Flags().BoolVar(&target.All, "all", false, "Shorthand for --view ALL")
}

// Resolve picks the view filter: an explicit --view wins, then the shorthand
// flags, then the fallback.
func (f ViewFlags) Resolve(fallback view.Filter) (view.Filter, error) {
	if f.Active && f.All {
		return "", fmt.Errorf("cannot combine --active and --all")
	}

	if f.View != "" {
		if f.Active || f.All {
			return "", fmt.Errorf("cannot combine --view with --active or --all")
		}
		return view.ParseFilter(f.View)
	}

	if f.Active {
		return view.FilterActive, nil
	}
	if f.All {
		return view.FilterAll, nil
	}

	return fallback, nil
}
