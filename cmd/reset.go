package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/state"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved scroll position and focus",
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := state.Open()
		if err != nil {
			return errmsg.Wrap(errmsg.OpStateOpen, err)
		}
		if err := resetNavigation(st); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "navigation reset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

// resetNavigation clears the saved navigation and closes st.
func resetNavigation(st state.Interface) error {
	if err := st.Reset(); err != nil {
		_ = st.Close()
		return errmsg.Wrap(errmsg.OpStateReset, err)
	}
	return st.Close()
}
