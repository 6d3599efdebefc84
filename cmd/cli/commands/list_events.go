package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
)

// ListEventsCmd creates the listEvents command
func ListEventsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listEvents",
		Short: "List current and future events with their workshop counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			includeHidden, _ := cmd.Flags().GetBool("include-hidden")
			highlighted, _ := cmd.Flags().GetBool("highlighted")

			listings, err := services.ListEvents(app.Ctx, app.Store, app.Logger, today(), includeHidden, highlighted)
			if err != nil {
				return err
			}

			if len(listings) == 0 {
				fmt.Println("No upcoming events.")
				return nil
			}

			fmt.Printf("\nFound %d upcoming events:\n\n", len(listings))
			for _, l := range listings {
				flags := ""
				if l.Event.HiddenEvent {
					flags += " [hidden]"
				}
				if !l.Event.Released {
					flags += " [unreleased]"
				}
				if l.Event.HighlightedEvent {
					flags += " [highlighted]"
				}
				fmt.Printf("- %s (%s)%s\n", l.Event.Name, l.Event.ID, flags)
				fmt.Printf("  %s to %s, %d workshops\n",
					l.Event.StartDate.Format("2006-01-02"),
					l.Event.FinishDate.Format("2006-01-02"),
					l.WorkshopCount)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("include-hidden", false, "Include hidden events (staff view)")
	cmd.Flags().Bool("highlighted", false, "List only events highlighted on the home page")

	return cmd
}
