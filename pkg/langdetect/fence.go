package langdetect

import "strings"

// minFence is the shortest run of backticks or tildes that opens a fence.
const minFence = 3

// LabelFences adds a guessed language to every fenced code block in markdown
// that has none. Blocks guessed as Text are left alone.
func LabelFences(markdown string) string {
	lines := strings.Split(markdown, "\n")

	for i := 0; i < len(lines); i++ {
		marker, info, ok := fenceOpen(lines[i])
		if !ok {
			continue
		}

		end := i + 1
		for end < len(lines) && !fenceClose(lines[end], marker) {
			end++
		}

		if info == "" {
			body := strings.Join(lines[i+1:end], "\n")
			if lang := Detect([]byte(body)); lang != Text {
				lines[i] += lang
			}
		}
		i = end
	}

	return strings.Join(lines, "\n")
}

// fenceOpen reports whether line opens a fence and returns its marker run
// and info string.
func fenceOpen(line string) (string, string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > minFence || trimmed == "" {
		return "", "", false
	}

	char := trimmed[0]
	if char != '`' && char != '~' {
		return "", "", false
	}

	n := 0
	for n < len(trimmed) && trimmed[n] == char {
		n++
	}
	if n < minFence {
		return "", "", false
	}

	info := strings.TrimSpace(trimmed[n:])
	if char == '`' && strings.Contains(info, "`") {
		return "", "", false
	}
	return trimmed[:n], info, true
}

func fenceClose(line, marker string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, marker) && strings.Trim(trimmed, marker[:1]) == ""
}
