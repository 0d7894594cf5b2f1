package mdtohtml

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/mdbridge/pkg/escape"
)

// fence opens and closes code blocks when it starts a trimmed line.
const fence = "```"

// Block-level line patterns.
//
//nolint:gochecknoglobals // Compiled patterns are read-only and safe for concurrent use.
var (
	unorderedItemPattern = regexp.MustCompile(`^[-*]\s+(.+)$`)
	orderedItemPattern   = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	headingPattern       = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
)

// scanMode is the block scanner state. Exactly one holds at any time.
type scanMode uint8

const (
	modeNormal scanMode = iota
	modeList
	modeCode
)

// listKind distinguishes bullet and numbered lists.
type listKind uint8

const (
	listUnordered listKind = iota
	listOrdered
)

func (k listKind) tag() string {
	if k == listOrdered {
		return "ol"
	}
	return "ul"
}

// scanner groups lines into blocks.
//
// acc is the single accumulator: rendered list items in modeList, raw code
// lines in modeCode, and always empty in modeNormal. Every transition goes
// through flush, which empties it.
type scanner struct {
	out  strings.Builder
	mode scanMode
	list listKind
	lang string
	acc  []string

	// rendered is set once any block has been written; blank lines before
	// that are ignored.
	rendered bool

	// pendingBlanks counts blank lines since the last block. They are only
	// materialized when another block follows.
	pendingBlanks int
}

// scanLine feeds one line to the state machine.
func (s *scanner) scanLine(line string) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, fence) {
		if s.mode == modeCode {
			s.flush()
			return
		}
		s.flush()
		s.openBlock()
		s.mode = modeCode
		s.lang = fenceLanguage(trimmed)
		return
	}

	if s.mode == modeCode {
		s.acc = append(s.acc, line)
		return
	}

	if groups := unorderedItemPattern.FindStringSubmatch(line); groups != nil {
		s.listItem(listUnordered, groups[1])
		return
	}

	if groups := orderedItemPattern.FindStringSubmatch(line); groups != nil {
		s.listItem(listOrdered, groups[2])
		return
	}

	if groups := headingPattern.FindStringSubmatch(line); groups != nil {
		s.flush()
		s.openBlock()
		level := strconv.Itoa(len(groups[1]))
		s.emit("<h" + level + ">" + Inline(strings.TrimSpace(groups[2])) + "</h" + level + ">")
		return
	}

	if trimmed == "" {
		s.flush()
		if s.rendered {
			s.pendingBlanks++
		}
		return
	}

	s.flush()
	s.openBlock()
	s.emit("<p>" + Inline(trimmed) + "</p>")
}

// listItem adds an item, starting a new list unless one of the same kind is open.
func (s *scanner) listItem(kind listKind, content string) {
	if s.mode != modeList || s.list != kind {
		s.flush()
		s.openBlock()
		s.mode = modeList
		s.list = kind
	}
	s.acc = append(s.acc, Inline(strings.TrimSpace(content)))
}

// openBlock writes the empty paragraphs owed by pending blank lines.
// N blank lines between two blocks become N-1 empty paragraphs.
func (s *scanner) openBlock() {
	for range s.pendingBlanks - 1 {
		s.out.WriteString("<p></p>")
	}
	s.pendingBlanks = 0
}

// flush writes the open list or code block, if any, and returns to modeNormal.
func (s *scanner) flush() {
	switch s.mode {
	case modeList:
		tag := s.list.tag()
		var block strings.Builder
		block.WriteString("<" + tag + ">")
		for _, item := range s.acc {
			block.WriteString("<li>" + item + "</li>")
		}
		block.WriteString("</" + tag + ">")
		s.emit(block.String())

	case modeCode:
		open := "<pre><code>"
		if s.lang != "" {
			open = `<pre><code class="language-` + escape.Attr(escape.HTML(s.lang)) + `">`
		}
		s.emit(open + escape.HTML(strings.Join(s.acc, "\n")) + "</code></pre>")

	case modeNormal:
	}

	s.mode = modeNormal
	s.acc = s.acc[:0]
	s.lang = ""
}

func (s *scanner) emit(block string) {
	s.out.WriteString(block)
	s.rendered = true
}

// finish flushes whatever is still open. An unterminated fence keeps
// everything buffered so far; trailing blank lines are dropped.
func (s *scanner) finish() string {
	s.flush()
	return s.out.String()
}

// fenceLanguage returns the first word of a fence's info string.
func fenceLanguage(trimmed string) string {
	fields := strings.Fields(strings.TrimLeft(trimmed, "`"))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
