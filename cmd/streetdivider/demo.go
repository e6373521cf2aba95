package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streetdivider/internal/config"
)

var demoAddresses = []string{"1;2 23a", "Markt-Str. 25"}

func createDemoCmd(settings *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Parse two sample addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Starting Streetdivider")

			d, err := newDivider(cmd.Context(), settings)
			if err != nil {
				return err
			}
			for _, address := range demoAddresses {
				loc, err := d.Parse(address)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, loc)
			}
			return nil
		},
	}
}
