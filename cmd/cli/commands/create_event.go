package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
)

// CreateEventCmd creates the createEvent command
func CreateEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createEvent <name> <start_date> <finish_date>",
		Short: "Create a new event (hidden by default until released to the public)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(args[1])
			if err != nil {
				return err
			}
			finishDate, err := parseDate(args[2])
			if err != nil {
				return err
			}

			ownerID, _ := cmd.Flags().GetString("owner")
			visible, _ := cmd.Flags().GetBool("visible")
			unreleased, _ := cmd.Flags().GetBool("unreleased")
			highlighted, _ := cmd.Flags().GetBool("highlighted")

			event, err := services.CreateEvent(app.Ctx, app.Store, app.Logger, services.EventInput{
				Name:        args[0],
				StartDate:   startDate,
				FinishDate:  finishDate,
				OwnerID:     ownerID,
				HiddenEvent: !visible,
				Released:    !unreleased,
				Highlighted: highlighted,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event created!\n\n")
			fmt.Printf("Event ID: %s\n", event.ID)
			fmt.Printf("Slug:     %s\n", event.Slug)
			fmt.Printf("Dates:    %s to %s\n\n",
				event.StartDate.Format("2006-01-02"), event.FinishDate.Format("2006-01-02"))

			return nil
		},
	}

	cmd.Flags().String("owner", "", "Volunteer ID of the event owner")
	cmd.Flags().Bool("visible", false, "Create the event unhidden")
	cmd.Flags().Bool("unreleased", false, "Create the event unreleased")
	cmd.Flags().Bool("highlighted", false, "Highlight the event on the home page")

	return cmd
}

// UpdateEventCmd creates the updateEvent command
func UpdateEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateEvent <event_id> <name> <start_date> <finish_date>",
		Short: "Update an event; the slug is recomputed from the new name",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(args[2])
			if err != nil {
				return err
			}
			finishDate, err := parseDate(args[3])
			if err != nil {
				return err
			}

			ownerID, _ := cmd.Flags().GetString("owner")
			visible, _ := cmd.Flags().GetBool("visible")
			unreleased, _ := cmd.Flags().GetBool("unreleased")
			highlighted, _ := cmd.Flags().GetBool("highlighted")

			event, err := services.UpdateEvent(app.Ctx, app.Store, app.Logger, args[0], services.EventInput{
				Name:        args[1],
				StartDate:   startDate,
				FinishDate:  finishDate,
				OwnerID:     ownerID,
				HiddenEvent: !visible,
				Released:    !unreleased,
				Highlighted: highlighted,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event updated!\n\n")
			fmt.Printf("Event ID: %s\n", event.ID)
			fmt.Printf("Slug:     %s\n\n", event.Slug)

			return nil
		},
	}

	cmd.Flags().String("owner", "", "Volunteer ID of the event owner")
	cmd.Flags().Bool("visible", false, "Leave the event unhidden")
	cmd.Flags().Bool("unreleased", false, "Mark the event unreleased")
	cmd.Flags().Bool("highlighted", false, "Highlight the event on the home page")

	return cmd
}
