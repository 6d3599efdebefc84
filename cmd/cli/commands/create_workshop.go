package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
)

// CreateWorkshopCmd creates the createWorkshop command
func CreateWorkshopCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createWorkshop <event_id> <name> <date> <start_time> <end_time> <location>",
		Short: "Create a workshop, or a whole series with --rrule",
		Long: `Create a workshop under an event.

With --rrule, the date argument is ignored and one workshop is created per
occurrence of the recurrence rule within the event's date range, e.g.
--rrule "FREQ=WEEKLY;BYDAY=SA;COUNT=6".`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.WorkshopInput{
				Name:      args[1],
				StartTime: args[3],
				EndTime:   args[4],
				Location:  args[5],
			}

			rruleStr, _ := cmd.Flags().GetString("rrule")

			if rruleStr != "" {
				workshops, err := services.CreateWorkshopSeries(app.Ctx, app.Store, app.Logger, args[0], rruleStr, input)
				if err != nil {
					return err
				}

				fmt.Printf("\n✓ Workshop series created (%d workshops):\n\n", len(workshops))
				for i, w := range workshops {
					fmt.Printf("  %2d. %s (%s)\n", i+1, w.Date.Format("2006-01-02 (Monday)"), w.ID)
				}
				fmt.Println()
				return nil
			}

			date, err := parseDate(args[2])
			if err != nil {
				return err
			}

			workshop, err := services.CreateWorkshop(app.Ctx, app.Store, app.Logger, args[0], date, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Workshop created!\n\n")
			fmt.Printf("Workshop ID: %s\n", workshop.ID)
			fmt.Printf("Date:        %s, %s to %s\n\n",
				workshop.Date.Format("2006-01-02"), workshop.StartTime, workshop.EndTime)

			return nil
		},
	}

	cmd.Flags().String("rrule", "", "RFC 5545 recurrence rule for a workshop series")

	return cmd
}
