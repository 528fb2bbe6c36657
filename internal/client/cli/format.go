package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
)

// venueLine renders a one-line summary of v for listings.
func venueLine(i int, v models.Venue, favorite bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%3d. ", i)
	if favorite {
		sb.WriteString("* ")
	}
	sb.WriteString(v.DisplayTitle())
	if v.IsCustom {
		sb.WriteString(" [custom]")
	}
	if v.Rating != nil {
		fmt.Fprintf(&sb, " (%.1f)", *v.Rating)
	}
	if sub := v.DisplaySubtitle(); sub != "" {
		sb.WriteString(" - ")
		sb.WriteString(sub)
	}
	return sb.String()
}
