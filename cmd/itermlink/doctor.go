package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorko/itermlink/internal/validator"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that this host can drive iTerm2",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := validator.ValidateHost()
			for _, c := range res.Checks {
				if c.OK {
					fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", c.Name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %s\n", c.Name, c.Detail)
				}
			}
			if !res.Valid() {
				return fmt.Errorf("host checks failed")
			}
			return nil
		},
	}
}
