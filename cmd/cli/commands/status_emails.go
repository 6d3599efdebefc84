package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
)

// PreviewStatusEmailsCmd creates the previewStatusEmails command
func PreviewStatusEmailsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "previewStatusEmails <event_id>",
		Short: "Compose the volunteer status emails for an event without sending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emails, err := services.PreviewStatusEmails(app.Ctx, app.Store, app.Logger, args[0])
			if err != nil {
				return err
			}

			if len(emails) == 0 {
				fmt.Println("No volunteers have assignment records for this event.")
				return nil
			}

			fmt.Printf("\n%d emails would be sent:\n\n", len(emails))
			for _, email := range emails {
				fmt.Printf("To: %s\nSubject: %s\n\n%s\n", email.Recipient, email.Subject, email.Body)
				fmt.Println("---")
			}

			return nil
		},
	}
}

// SendStatusEmailsCmd creates the sendStatusEmails command
func SendStatusEmailsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sendStatusEmails <event_id>",
		Short: "Send each volunteer one email summarizing their statuses for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mail, err := app.Mail()
			if err != nil {
				return err
			}

			sent, failed, err := services.SendStatusEmails(app.Ctx, app.Store, mail, app.Logger, args[0])
			if err != nil {
				return err
			}

			if len(sent) > 0 {
				fmt.Printf("\n✓ Sent %d status emails:\n", len(sent))
				for _, email := range sent {
					fmt.Printf("  ✓ %s\n", email.Recipient)
				}
			}

			if len(failed) > 0 {
				fmt.Printf("\n⚠️  Failed to send %d emails:\n", len(failed))
				for _, fe := range failed {
					fmt.Printf("  ✗ %s: %s\n", fe.Recipient, fe.Error)
				}
			}

			if len(sent) == 0 && len(failed) == 0 {
				fmt.Println("No volunteers have assignment records for this event.")
			}
			fmt.Println()

			return nil
		},
	}
}
