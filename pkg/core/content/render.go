// Package content renders event page content blocks. The block kinds form a
// closed set; Render dispatches on the kind with an explicit switch and one
// render function per variant.
package content

import (
	"fmt"
	"html"

	"github.com/compclub/compclub/pkg/db"
)

// Render returns the HTML fragment for a single content block.
// Unknown kinds are an error rather than silently skipped.
func Render(block db.ContentBlock) (string, error) {
	switch block.Kind {
	case db.BlockRichText:
		return renderRichText(block), nil
	case db.BlockDownload:
		return renderDownload(block), nil
	case db.BlockNoEmbed:
		return renderNoEmbed(block), nil
	case db.BlockLightBox:
		return renderLightBox(block), nil
	default:
		return "", fmt.Errorf("unknown content block kind %q", block.Kind)
	}
}

// RenderAll renders an event's blocks in page order and concatenates the
// fragments
func RenderAll(blocks []db.ContentBlock) (string, error) {
	var out string
	for _, block := range blocks {
		fragment, err := Render(block)
		if err != nil {
			return "", err
		}
		out += fragment
	}
	return out, nil
}

// renderRichText passes the stored markup through untouched; it is authored
// by staff in the editor, not by site visitors.
func renderRichText(block db.ContentBlock) string {
	return fmt.Sprintf(`<div class="rich-text">%s</div>`, block.Text)
}

func renderDownload(block db.ContentBlock) string {
	return fmt.Sprintf(`<a class="download-button" href=%q download>%s</a>`,
		block.File, html.EscapeString(block.Name))
}

func renderNoEmbed(block db.ContentBlock) string {
	return fmt.Sprintf(`<div class="noembed" data-url=%q><p class="caption">%s</p></div>`,
		block.URL, html.EscapeString(block.Caption))
}

func renderLightBox(block db.ContentBlock) string {
	return fmt.Sprintf(`<a class="lightbox" href=%q><img src=%q alt=%q></a>`,
		block.File, block.File, html.EscapeString(block.Caption))
}
