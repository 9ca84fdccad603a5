package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rampkit/rampup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manager notes on a rep's ramp",
	}

	cmd.AddCommand(
		newNotesShowCmd(app),
		newNotesDailyCmd(app),
		newNotesWeeklyCmd(app),
		newNotesCheckCmd(app),
	)

	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REP",
		Short: "Show all notes for a rep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			notes, err := app.Notes.Notes(ctx, rep.ID)
			if err != nil {
				return err
			}

			if len(notes.DailyNotes) == 0 && len(notes.WeeklySummaries) == 0 && len(notes.Checklist) == 0 {
				fmt.Printf("No notes for %s yet.\n", rep.Name)
				return nil
			}

			if len(notes.DailyNotes) > 0 {
				fmt.Println(formatter.Header("Daily Notes"))
				for _, day := range sortedIntKeys(notes.DailyNotes) {
					fmt.Printf("%s %s\n", formatter.Bold(fmt.Sprintf("Day %d:", day)), notes.DailyNotes[day])
				}
				fmt.Println()
			}
			if len(notes.WeeklySummaries) > 0 {
				fmt.Println(formatter.Header("Weekly Summaries"))
				for _, week := range sortedIntKeys(notes.WeeklySummaries) {
					fmt.Printf("%s %s\n", formatter.Bold(fmt.Sprintf("Week %d:", week)), notes.WeeklySummaries[week])
				}
				fmt.Println()
			}
			if len(notes.Checklist) > 0 {
				fmt.Println(formatter.Header("Manager Checklist"))
				items := make([]string, 0, len(notes.Checklist))
				for item := range notes.Checklist {
					items = append(items, item)
				}
				sort.Strings(items)
				for _, item := range items {
					fmt.Printf("%s %s\n", formatter.CheckMark(notes.Checklist[item]), item)
				}
			}
			return nil
		},
	}
}

func sortedIntKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func newNotesDailyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "daily REP DAY NOTE...",
		Short: "Record a note on a ramp day",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day number %q", args[1])
			}
			body := strings.Join(args[2:], " ")
			if err := app.Notes.SetDailyNote(ctx, rep.ID, day, body); err != nil {
				return err
			}
			fmt.Printf("Noted on day %d for %s\n", day, rep.Name)
			return nil
		},
	}
}

func newNotesWeeklyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly REP WEEK SUMMARY...",
		Short: "Record a weekly summary",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			week, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid week number %q", args[1])
			}
			body := strings.Join(args[2:], " ")
			if err := app.Notes.SetWeeklySummary(ctx, rep.ID, week, body); err != nil {
				return err
			}
			fmt.Printf("Summarized week %d for %s\n", week, rep.Name)
			return nil
		},
	}
}

func newNotesCheckCmd(app *App) *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "check REP ITEM...",
		Short: "Tick a manager checklist item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			item := strings.Join(args[1:], " ")
			if err := app.Notes.SetChecklistItem(ctx, rep.ID, item, !unset); err != nil {
				return err
			}
			if unset {
				fmt.Printf("Unchecked %q for %s\n", item, rep.Name)
			} else {
				fmt.Printf("Checked %q for %s\n", item, rep.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unset, "unset", false, "Uncheck the item instead")

	return cmd
}
