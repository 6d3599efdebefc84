package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
	"github.com/compclub/compclub/pkg/core/visibility"
)

// ViewEventCmd creates the viewEvent command
func ViewEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewEvent <event_id> <slug>",
		Short: "View an event as a given user, applying the visibility rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewer, _ := cmd.Flags().GetString("as-user")

			result, err := services.ViewEvent(app.Ctx, app.Store, app.Logger, args[0], args[1], viewer, today())
			if err != nil {
				return err
			}

			if result.RedirectSlug != "" {
				fmt.Printf("Redirect: %s/events/%s/%s\n", app.Cfg.SiteBaseURL, args[0], result.RedirectSlug)
				return nil
			}

			switch result.Decision.Outcome {
			case visibility.NotFound, visibility.DeniedHidden:
				// Hidden events deny exactly like missing ones
				return fmt.Errorf("event does not exist or you don't have permission to view it")
			case visibility.DeniedNotStarted, visibility.DeniedUnreleased:
				fmt.Println(result.Decision.Message)
				return nil
			}

			event := result.Event
			fmt.Printf("\n%s\n", event.Name)
			fmt.Printf("%s to %s\n\n",
				event.StartDate.Format("Monday 2 January 2006"),
				event.FinishDate.Format("Monday 2 January 2006"))

			if len(result.Workshops) > 0 {
				fmt.Println("Workshops:")
				for _, w := range result.Workshops {
					fmt.Printf("  - %s on %s (%s to %s, %s)\n",
						w.Name, w.Date.Format("2006-01-02"), w.StartTime, w.EndTime, w.Location)
				}
				fmt.Println()
			}

			if result.ContentHTML != "" {
				fmt.Println(result.ContentHTML)
			}

			return nil
		},
	}

	cmd.Flags().String("as-user", "", "User ID to evaluate visibility for (anonymous if omitted)")

	return cmd
}
