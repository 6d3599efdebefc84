package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
)

// SignUpCmd creates the signUp command
func SignUpCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signUp <username> <first_name> <last_name> <email>",
		Short: "Create a student account (user, volunteer and student records, one transaction)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			schoolID, _ := cmd.Flags().GetString("school")

			input := services.SignUpInput{
				Username:  args[0],
				FirstName: args[1],
				LastName:  args[2],
				Email:     args[3],
				SchoolID:  schoolID,
			}

			volunteerOnly, _ := cmd.Flags().GetBool("volunteer")

			var result *services.AccountResult
			var err error
			if volunteerOnly {
				result, err = services.CreateVolunteerAccount(app.Ctx, app.Store, app.Logger, input)
			} else {
				result, err = services.SignUpStudent(app.Ctx, app.Store, app.Logger, input)
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Account created!\n\n")
			fmt.Printf("User ID:      %s\n", result.User.ID)
			fmt.Printf("Volunteer ID: %s\n", result.Volunteer.ID)
			if result.Student != nil {
				fmt.Printf("Student ID:   %s\n", result.Student.ID)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("school", "", "School ID for student sign-ups")
	cmd.Flags().Bool("volunteer", false, "Create a volunteer account without a student record")

	return cmd
}
