package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streetdivider/internal/config"
	"github.com/streetdivider/internal/db"
	"github.com/streetdivider/internal/logger"
	"github.com/streetdivider/internal/streets"
)

// createStreetsCmd manages the special streets kept in PostgreSQL
func createStreetsCmd(settings *config.Settings) *cobra.Command {
	streetsCmd := &cobra.Command{
		Use:   "streets",
		Short: "Manage the special streets stored in PostgreSQL",
	}

	streetsCmd.AddCommand(createStreetsImportCmd(settings))
	streetsCmd.AddCommand(createStreetsRemoveCmd())
	streetsCmd.AddCommand(createStreetsListCmd())
	streetsCmd.AddCommand(createStreetsCountCmd())

	return streetsCmd
}

func withStore(ctx context.Context, fn func(*streets.Store) error) error {
	conn, err := db.NewConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(streets.NewStore(conn.DB))
}

func createStreetsImportCmd(settings *config.Settings) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "import [filename]",
		Short: "Import a street list; \"embedded\" imports the built-in list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			if args[0] == "embedded" {
				names = streets.Default()
			} else {
				var err error
				if names, err = streets.ReadFile(args[0], encoding); err != nil {
					return err
				}
			}

			return withStore(cmd.Context(), func(store *streets.Store) error {
				if err := store.EnsureSchema(cmd.Context()); err != nil {
					return err
				}
				added, err := store.Import(cmd.Context(), names)
				if err != nil {
					return err
				}
				logger.Info("special streets imported", "file", args[0], "read", len(names), "added", added)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d streets\n", added, len(names))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", settings.DictEncoding, "file encoding (utf-8, latin1, windows-1252)")
	return cmd
}

func createStreetsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [street...]",
		Short: "Remove special streets by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *streets.Store) error {
				removed, err := store.Remove(cmd.Context(), args)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d streets\n", removed)
				return nil
			})
		},
	}
}

func createStreetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored special streets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *streets.Store) error {
				names, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
}

func createStreetsCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count the stored special streets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *streets.Store) error {
				n, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			})
		},
	}
}
