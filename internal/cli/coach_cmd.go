package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	appview "github.com/rampkit/rampup/internal/app"
	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/cli/formatter"
	"github.com/rampkit/rampup/internal/coaching"
	"github.com/spf13/cobra"
)

func newCoachCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "AI coaching for reps and managers",
	}

	cmd.AddCommand(
		newCoachRecommendCmd(app),
		newCoachAdviceCmd(app),
		newCoachReviewCmd(app),
		newCoachSummaryCmd(app),
		newCoachRoleplayCmd(app),
	)

	return cmd
}

func newCoachRecommendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend REP",
		Short: "Coaching recommendations for a rep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			report, err := app.Reports.BuildReport(ctx, rep.ID, time.Now())
			if err != nil {
				return err
			}

			recs := app.Coach.Recommendations(ctx, report.Snapshot())
			fmt.Printf("%s\n", formatter.FormatRecommendations(recs))
			return nil
		},
	}
}

func newCoachAdviceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advice REP",
		Short: "Daily priorities for a rep's current day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			report, err := app.Reports.BuildReport(ctx, rep.ID, time.Now())
			if err != nil {
				return err
			}

			day := report.Pace.ExpectedDay
			if report.Pace.CurrentDay != nil {
				day = *report.Pace.CurrentDay
			}
			week := (day-1)/catalog.DaysPerWeek + 1

			var activities []string
			if info := app.Catalog.Day(day); info != nil {
				activities = info.Activities
			}

			advice := app.Coach.DailyAdvice(ctx, report.Snapshot(), week, activities)
			fmt.Printf("%s\n", formatter.FormatDailyAdvice(advice))
			return nil
		},
	}
}

func newCoachReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review FILE",
		Short: "Score a call transcript",
		Long:  "Score a call transcript against the qualification framework. Pass - to read the transcript from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var transcript []byte
			var err error
			if args[0] == "-" {
				transcript, err = io.ReadAll(os.Stdin)
			} else {
				transcript, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading transcript: %w", err)
			}

			review, err := app.Coach.ReviewCall(context.Background(), string(transcript))
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatCallReview(review))
			return nil
		},
	}
}

func newCoachSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary MANAGER",
		Short: "Weekly roll-up of a manager's team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mgr, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			team, err := app.Roster.ListTeam(ctx, mgr.ID)
			if err != nil {
				return err
			}
			if len(team) == 0 {
				fmt.Printf("%s has no team yet.\n", mgr.Name)
				return nil
			}

			now := time.Now()
			snapshots := make([]appview.CoachSnapshot, 0, len(team))
			for _, rep := range team {
				report, err := app.Reports.BuildReport(ctx, rep.ID, now)
				if err != nil {
					return err
				}
				snapshots = append(snapshots, report.Snapshot())
			}

			summary := app.Coach.TeamSummary(ctx, snapshots)
			fmt.Printf("%s\n", formatter.FormatTeamSummary(summary))
			return nil
		},
	}
}

func newCoachRoleplayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roleplay SCENARIO",
		Short: "Practice a call against an AI prospect",
		Long:  "Practice a call against an AI prospect. Scenarios: cold-call, discovery, objection, closing. Type /quit to end.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			scenario := coaching.RoleplayScenario(args[0])

			fmt.Println(formatter.Dim("You open the call. Type /quit to end."))

			var history []coaching.RoleplayMessage
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print(formatter.StyleBlue.Render("you> "))
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "/quit" {
					break
				}

				reply, err := app.Coach.RoleplayReply(ctx, scenario, history, line)
				if err != nil {
					return err
				}
				history = append(history,
					coaching.RoleplayMessage{Role: "bdr", Content: line},
					coaching.RoleplayMessage{Role: "prospect", Content: reply},
				)
				fmt.Printf("%s %s\n", formatter.StylePurple.Render("prospect>"), reply)
			}
			return scanner.Err()
		},
	}
}
