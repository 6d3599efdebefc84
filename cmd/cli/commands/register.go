package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
)

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "register <event_id> <name> <email> <number> <date_of_birth> <parent_email> <parent_number>",
		Short: "Register a student's interest in an event",
		Args:  cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateOfBirth, err := parseDate(args[4])
			if err != nil {
				return err
			}

			registration, err := services.RegisterInterest(app.Ctx, app.Store, app.Logger, args[0], services.RegistrationInput{
				Name:         args[1],
				Email:        args[2],
				Number:       args[3],
				DateOfBirth:  dateOfBirth,
				ParentEmail:  args[5],
				ParentNumber: args[6],
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Registration recorded!\n\n")
			fmt.Printf("Registration ID: %s\n\n", registration.ID)

			return nil
		},
	}
}
