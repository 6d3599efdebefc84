package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compclub/compclub/pkg/core/services"
	"github.com/compclub/compclub/pkg/db"
)

// AddContentCmd creates the addContent command
func AddContentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addContent <event_id> <kind>",
		Short: "Attach a content block (rich_text, download, noembed or lightbox) to an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")
			name, _ := cmd.Flags().GetString("name")
			file, _ := cmd.Flags().GetString("file")
			url, _ := cmd.Flags().GetString("url")
			caption, _ := cmd.Flags().GetString("caption")

			block, err := services.AddContentBlock(app.Ctx, app.Store, app.Logger, args[0], db.ContentBlock{
				Kind:    db.BlockKind(args[1]),
				Text:    text,
				Name:    name,
				File:    file,
				URL:     url,
				Caption: caption,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Content block added!\n\n")
			fmt.Printf("Block ID: %s (position %d)\n\n", block.ID, block.Ordering)

			return nil
		},
	}

	cmd.Flags().String("text", "", "Markup for rich_text blocks")
	cmd.Flags().String("name", "", "Button label for download blocks")
	cmd.Flags().String("file", "", "File path for download and lightbox blocks")
	cmd.Flags().String("url", "", "Embed URL for noembed blocks")
	cmd.Flags().String("caption", "", "Caption for noembed and lightbox blocks")

	return cmd
}
