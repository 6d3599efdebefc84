package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
	"github.com/compclub/compclub/pkg/db"
)

// AssignVolunteersCmd creates the assignVolunteers command
func AssignVolunteersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assignVolunteers <workshop_id> <volunteer_id>=<AS|WL|DE> ...",
		Short: "Apply an assignment submission to a workshop",
		Long: `Apply a staff assignment submission to a workshop. Each argument after the
workshop ID maps a volunteer to a status: AS (assigned), WL (waitlist) or
DE (declined). The whole submission is validated first; one ineligible
volunteer rejects the entire batch and nothing is written.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			submission := make(map[string]db.AssignStatus, len(args)-1)
			for _, arg := range args[1:] {
				volunteerID, status, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected <volunteer_id>=<status>, got %q", arg)
				}
				submission[volunteerID] = db.AssignStatus(strings.ToUpper(status))
			}

			rows, err := services.AssignVolunteers(app.Ctx, app.Store, app.Logger, args[0], submission)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment submission applied (%d records):\n\n", len(rows))
			for _, row := range rows {
				fmt.Printf("  - %s: %s\n", row.VolunteerID, row.Status.Label())
			}
			fmt.Println()

			return nil
		},
	}
}
