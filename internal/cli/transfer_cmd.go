package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export REP [FILE]",
		Short: "Export a rep's activity state as JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			state, err := app.Onboarding.ExportState(ctx, rep.ID)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if len(args) == 2 {
				if err := os.WriteFile(args[1], data, 0o644); err != nil {
					return err
				}
				fmt.Printf("Exported %d entries to %s\n", len(state), args[1])
				return nil
			}

			_, err = os.Stdout.Write(data)
			return err
		},
	}

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import REP FILE",
		Short: "Replace a rep's activity state from a JSON export",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			var state map[string]bool
			if err := json.Unmarshal(data, &state); err != nil {
				return fmt.Errorf("parsing %s: %w", args[1], err)
			}

			if err := app.Onboarding.ImportState(ctx, rep.ID, state); err != nil {
				return err
			}
			fmt.Printf("Imported %d entries for %s\n", len(state), rep.Name)
			return nil
		},
	}
}
