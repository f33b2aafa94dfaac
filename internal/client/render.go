package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Bold(true)
)

const (
	markerPending = "*"
	emptyMessage  = "no bookmarks"
)

// renderBookmarks lays bookmarks out as a table. Records with changes not yet
// pushed to the server are marked with an asterisk.
func renderBookmarks(bookmarks []models.Bookmark) string {
	if len(bookmarks) == 0 {
		return mutedStyle.Render(emptyMessage)
	}

	header := []string{"ID", "#", "NAME", "URL"}
	rows := make([][]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		id := strconv.FormatInt(b.BookmarkID, 10)
		if b.IsLocalModified {
			id = markerPending + id
		}
		rows = append(rows, []string{id, strconv.FormatInt(b.Ordinal, 10), b.Name, b.URL})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(formatRow(header, widths)))
	b.WriteString("\n")
	for i, w := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", w))
	}
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(formatRow(row, widths))
	}

	return b.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		// последний столбец не дополняем пробелами
		if i == len(cells)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return strings.Join(parts, " │ ")
}

func renderStatus(status models.SyncStatus) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Last sync:"))
	b.WriteString(" ")
	if status.LastSyncAt.IsZero() {
		b.WriteString(mutedStyle.Render("never"))
	} else {
		b.WriteString(status.LastSyncAt.UTC().Format(time.RFC3339))
	}

	if status.LastSyncError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Last error:"))
		b.WriteString(" ")
		b.WriteString(status.LastSyncError)
	}

	return b.String()
}

func renderOK(format string, args ...any) string {
	return okStyle.Render("OK:") + " " + fmt.Sprintf(format, args...)
}
