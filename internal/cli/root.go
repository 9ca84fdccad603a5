package cli

import (
	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/coaching"
	"github.com/rampkit/rampup/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Roster     service.RosterService
	Onboarding service.OnboardingService
	Reports    service.ReportService
	Notes      service.NotesService
	Coach      coaching.CoachService
	Catalog    *catalog.Catalog

	// IsInteractive reports whether stdin is a terminal; forms and the
	// checklist TUI are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "rampup" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "rampup",
		Short: "BDR onboarding tracker and coach",
	}

	root.AddCommand(
		newRepCmd(app),
		newStartCmd(app),
		newDayCmd(app),
		newCheckCmd(app),
		newStatusCmd(app),
		newProgressCmd(app),
		newNotesCmd(app),
		newEvidenceCmd(app),
		newCoachCmd(app),
		newResetCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
