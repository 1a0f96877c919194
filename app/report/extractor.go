package report

import (
	"strings"
	"unicode/utf8"

	"example/cosmic-api/app/models"
)

// Placeholder fills any section the completion text did not provide.
const Placeholder = "Content could not be parsed for this section."

// Extractor splits raw completion text into the five report slides.
// Implementations must always return SlideCount slides with the fixed titles.
type Extractor interface {
	Extract(text string) [models.SlideCount]models.Slide
}

// PrefixExtractor finds sections by lines that start with a known title.
// Leading markdown decoration (#, *, spaces) is ignored when matching.
type PrefixExtractor struct {
	Titles [models.SlideCount]string
}

func NewPrefixExtractor() PrefixExtractor {
	return PrefixExtractor{Titles: SectionTitles}
}

func (p PrefixExtractor) Extract(text string) [models.SlideCount]models.Slide {
	var bodies [models.SlideCount]strings.Builder
	current := -1

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		header := strings.TrimLeft(strings.TrimSpace(line), "#* \t")
		if idx, rest, ok := p.matchTitle(header); ok {
			current = idx
			rest = strings.TrimLeft(rest, ":-*# ")
			if rest != "" {
				bodies[current].WriteString(rest)
				bodies[current].WriteString("\n")
			}
			continue
		}
		if current < 0 {
			continue
		}
		bodies[current].WriteString(line)
		bodies[current].WriteString("\n")
	}

	var out [models.SlideCount]models.Slide
	for i := range out {
		content := strings.TrimRight(bodies[i].String(), " \t\r\n")
		if content == "" {
			content = Placeholder
		}
		out[i] = models.Slide{Title: p.Titles[i], Content: content}
	}
	return out
}

// matchTitle treats en and em dashes as plain hyphens so "1-2 years" still
// matches. The returned rest is sliced from the line as written.
func (p PrefixExtractor) matchTitle(line string) (int, string, bool) {
	for i, title := range p.Titles {
		if n, ok := prefixLen(line, title); ok {
			return i, line[n:], true
		}
	}
	return -1, "", false
}

// prefixLen reports how many bytes of line the title covers.
func prefixLen(line, title string) (int, bool) {
	pos := 0
	for _, want := range title {
		if pos >= len(line) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(line[pos:])
		if foldDash(got) != foldDash(want) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

func foldDash(r rune) rune {
	if r == '–' || r == '—' {
		return '-'
	}
	return r
}
