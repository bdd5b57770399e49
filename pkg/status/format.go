package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Display formatting constants
const (
	fileIndent  = 4  // Spaces before the status symbol
	nameWidth   = 35 // Width of the file name column
	statusWidth = 12 // Width of the status column
)

// FormatFileResult formats one artifact's outcome as an aligned line,
// colored by the worst diagnostic severity it carries
func FormatFileResult(file string, errs, warns int) string {
	var prefix, status string
	switch {
	case errs > 0:
		prefix = color.RedString("✗")
		status = color.RedString("%-*s", statusWidth, "failed")
	case warns > 0:
		prefix = color.YellowString("⚠")
		status = color.YellowString("%-*s", statusWidth, "warnings")
	default:
		prefix = color.GreenString("✓")
		status = color.GreenString("%-*s", statusWidth, "inlined")
	}

	name := file
	if len(name) > nameWidth {
		name = "..." + name[len(name)-nameWidth+3:]
	}

	return fmt.Sprintf("%s%s %-*s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		nameWidth, name,
		status)
}

// FormatProgress formats the progress text with percentage
func FormatProgress(done, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if done > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(done) / float64(total) * 100
	}
	return fmt.Sprintf("Inlining locales %d/%d (%.0f%%)", done, total, percentage)
}

// FormatSummary formats the end-of-run verdict line
func FormatSummary(files, errs, warns int) string {
	parts := []string{plural(files, "file") + " processed"}
	if errs > 0 {
		parts = append(parts, color.RedString(plural(errs, "error")))
	}
	if warns > 0 {
		parts = append(parts, color.YellowString(plural(warns, "warning")))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
