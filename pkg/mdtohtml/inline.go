package mdtohtml

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/yaklabco/mdbridge/pkg/escape"
)

// Tag placeholders use Unicode Private Use Area characters. Generated <img>
// and <a> openers are parked behind them so that later passes (bold, italic,
// code) never rewrite attribute values such as URLs containing underscores.
const (
	placeholderStart = "\uE000"
	placeholderEnd   = "\uE001"
)

// italicMatchTimeout bounds the backtracking italic pattern on adversarial lines.
const italicMatchTimeout = 250 * time.Millisecond

// Precompiled inline patterns, listed in the order they are applied.
//
//nolint:gochecknoglobals // Compiled patterns are read-only and safe for concurrent use.
var (
	imagePattern      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	starItalicPattern = newStarItalicPattern()
	underscorePattern = regexp.MustCompile(`_(.+?)_`)
	codeSpanPattern   = regexp.MustCompile("`(.+?)`")

	placeholderPattern = regexp.MustCompile(placeholderStart + `(\d+)` + placeholderEnd)
	placeholderRunes   = strings.NewReplacer(placeholderStart, "", placeholderEnd, "")
)

// newStarItalicPattern compiles the single-asterisk italic rule. RE2 has no
// lookaround, and the rule needs it to stay clear of leftover ** runs.
func newStarItalicPattern() *regexp2.Regexp {
	re := regexp2.MustCompile(`(?<!\*)\*(?!\*)(.+?)(?<!\*)\*(?!\*)`, regexp2.None)
	re.MatchTimeout = italicMatchTimeout
	return re
}

// Inline converts one line of Markdown inline syntax to HTML.
//
// The input is raw text with any block prefix already removed; the output is
// HTML-safe. Passes run in a fixed precedence: escape, image, link, bold,
// italic (* then _), inline code. Each pass is a single non-recursive sweep
// over the result of the previous one.
func Inline(text string) string {
	if text == "" {
		return ""
	}

	tags := &tagStash{}

	out := escape.HTML(placeholderRunes.Replace(text))

	out = imagePattern.ReplaceAllStringFunc(out, func(match string) string {
		groups := imagePattern.FindStringSubmatch(match)
		src := escape.Attr(tags.source(groups[2]))
		alt := escape.Attr(tags.source(groups[1]))
		return tags.park(`<img src="`+src+`" alt="`+alt+`">`, match)
	})

	out = linkPattern.ReplaceAllStringFunc(out, func(match string) string {
		groups := linkPattern.FindStringSubmatch(match)
		href := escape.Attr(tags.source(groups[2]))
		return tags.park(`<a href="`+href+`">`, "") + groups[1] + "</a>"
	})

	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")

	if strings.Contains(out, "*") {
		// Replace only fails on timeout; the line then keeps its asterisks.
		if replaced, err := starItalicPattern.Replace(out, "<em>$1</em>", -1, -1); err == nil {
			out = replaced
		}
	}

	out = underscorePattern.ReplaceAllString(out, "<em>$1</em>")
	out = codeSpanPattern.ReplaceAllString(out, "<code>$1</code>")

	return tags.restore(out)
}

// tagStash parks generated tags for the duration of one Inline call.
type tagStash struct {
	tags    []string
	sources []string
}

// park stores tag and returns its placeholder. source is the escaped Markdown
// the tag was produced from, used when the placeholder lands inside an attribute.
func (s *tagStash) park(tag, source string) string {
	s.tags = append(s.tags, tag)
	s.sources = append(s.sources, source)
	return placeholderStart + strconv.Itoa(len(s.tags)-1) + placeholderEnd
}

// source expands placeholders inside an attribute value back to their
// original Markdown so a tag is never nested in an attribute.
func (s *tagStash) source(value string) string {
	return s.expand(value, s.sources)
}

// restore replaces every placeholder with its parked tag.
func (s *tagStash) restore(text string) string {
	return s.expand(text, s.tags)
}

func (s *tagStash) expand(text string, values []string) string {
	if len(values) == 0 || !strings.Contains(text, placeholderStart) {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		idx, err := strconv.Atoi(match[len(placeholderStart) : len(match)-len(placeholderEnd)])
		if err != nil || idx < 0 || idx >= len(values) {
			return ""
		}
		return values[idx]
	})
}
