package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdbridge/pkg/runner"
)

// plural picks the singular or plural form of word for count.
func plural(count int, word string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, word)
	}
	return fmt.Sprintf("%d %ss", count, word)
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files converted, 2 written, 1 unstable, 1 error".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No files found") + "\n"
	}

	parts := []string{plural(stats.FilesProcessed, "file") + " processed"}

	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}
	if stats.FilesChanged > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d normalized", stats.FilesChanged)))
	}
	if stats.FilesUnstable > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unstable", stats.FilesUnstable)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(plural(stats.FilesErrored, "error")))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatFileLine formats one processed file: "path: markdown -> html (out.html)".
func (s *Styles) FormatFileLine(path, source, target, output string) string {
	line := s.FilePath.Render(path) + ": " +
		s.Format.Render(source) + s.Arrow.Render(" -> ") + s.Format.Render(target)
	if output != "" {
		line += s.Dim.Render(" (" + output + ")")
	}
	return line
}

// FormatDiffLine colors one unified diff line by its prefix.
func (s *Styles) FormatDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return s.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return s.DiffHeader.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.DiffRemove.Render(line)
	default:
		return s.DiffContext.Render(line)
	}
}
