package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
)

// DeclareAvailabilityCmd creates the declareAvailability command
func DeclareAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "declareAvailability <workshop_id> <volunteer_id>",
		Short: "Record a volunteer's availability for a workshop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeclareAvailability(app.Ctx, app.Store, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Println("✓ Availability declared")
			return nil
		},
	}
}

// WithdrawAvailabilityCmd creates the withdrawAvailability command
func WithdrawAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "withdrawAvailability <workshop_id> <volunteer_id>",
		Short: "Withdraw a volunteer's availability for a workshop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.WithdrawAvailability(app.Ctx, app.Store, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Println("✓ Availability withdrawn")
			return nil
		},
	}
}

// WorkshopRosterCmd creates the workshopRoster command
func WorkshopRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "workshopRoster <workshop_id>",
		Short: "Show a workshop's volunteer sets (unassigned, assigned, waitlist, withdrawn)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := services.GetWorkshopRoster(app.Ctx, app.Store, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n%s on %s\n\n", roster.Workshop.Name, roster.Workshop.Date.Format("2006-01-02"))

			fmt.Printf("Unassigned (%d):\n", len(roster.Sets.Unassigned))
			for _, v := range roster.Sets.Unassigned {
				fmt.Printf("  - %s\n", v.ID)
			}

			printIDs := func(label string, ids []string) {
				fmt.Printf("%s (%d):\n", label, len(ids))
				for _, id := range ids {
					fmt.Printf("  - %s\n", id)
				}
			}
			printIDs("Assigned", roster.Sets.Assigned)
			printIDs("Waitlisted", roster.Sets.Waitlisted)
			printIDs("Declined", roster.Sets.Declined)
			printIDs("Withdrawn", roster.Sets.Withdrawn)
			fmt.Println()

			return nil
		},
	}
}
