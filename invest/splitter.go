package invest

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"

	"storysplit/domain"
)

// FallbackLanguage is used when detection yields a language we have no
// dictionary for.
const FallbackLanguage = "en"

// Splitter proposes story splits by locating conjunction and workflow
// keywords with one Aho-Corasick automaton per language.
type Splitter struct {
	machines map[string]*goahocorasick.Machine
	log      *slog.Logger
}

// textMapping tracks original rune positions through normalization so
// match spans can be projected back onto the raw story text.
type textMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewSplitter builds one automaton per language dictionary. Patterns
// are normalized and wrapped in spaces so "and" never matches inside
// "band".
func NewSplitter(data *KeywordData, log *slog.Logger) (Splitter, error) {
	machines := make(map[string]*goahocorasick.Machine, len(data.ByLanguage))
	for lang, words := range data.ByLanguage {
		patterns := make([][]rune, 0, len(words))
		for _, w := range words {
			p := normalizeRunes([]rune(w))
			if len(p) == 0 {
				continue
			}
			padded := append([]rune{' '}, p...)
			patterns = append(patterns, append(padded, ' '))
		}
		m := new(goahocorasick.Machine)
		if err := m.Build(patterns); err != nil {
			return Splitter{}, fmt.Errorf("building %s automaton: %w", lang, err)
		}
		machines[lang] = m
	}
	return Splitter{machines: machines, log: log}, nil
}

// Propose cuts the story description at keyword spans and turns each
// fragment into a child draft. Fewer than two fragments means the
// story has nothing to split, which is a valid outcome, not an error.
func (s Splitter) Propose(story domain.Story) []domain.StoryDraft {
	text := story.Description
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lang := s.language(text)
	machine, ok := s.machines[lang]
	if !ok {
		machine = s.machines[FallbackLanguage]
	}
	if machine == nil {
		return nil
	}

	mapping := normalize(text)
	spans := machine.MultiPatternSearch(mapping.Normalized, false)
	if len(spans) == 0 {
		return nil
	}

	fragments := cut(text, mapping, spans)
	if len(fragments) < 2 {
		return nil
	}

	drafts := make([]domain.StoryDraft, 0, len(fragments))
	for _, frag := range fragments {
		drafts = append(drafts, domain.StoryDraft{
			Title:       draftTitle(story.Title, frag),
			Description: frag,
			Priority:    story.Priority,
		})
	}
	s.log.Debug("split proposal built",
		"story_id", story.ID,
		"lang", lang,
		"fragments", len(fragments))
	return drafts
}

func (s Splitter) language(text string) string {
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391()
}

// cut removes each matched keyword and returns the surrounding
// fragments, dropping the ones too short to stand as a story.
func cut(text string, mapping textMapping, spans []*goahocorasick.Term) []string {
	type region struct{ start, end int }
	var regions []region
	lastEnd := -1
	sort.Slice(spans, func(i, j int) bool { return spans[i].Pos < spans[j].Pos })

	for _, span := range spans {
		// Skip the padding spaces around the pattern.
		normStart := int(span.Pos) + 1
		normEnd := int(span.Pos) + len(span.Word) - 1
		if normStart >= len(mapping.OrigIdx) || normEnd > len(mapping.OrigIdx) {
			continue
		}
		start := mapping.OrigIdx[normStart]
		end := mapping.OrigIdx[normEnd-1] + 1
		if start < 0 || start <= lastEnd {
			continue // overlapping or sentinel match
		}
		regions = append(regions, region{start: start, end: end})
		lastEnd = end
	}

	origRunes := []rune(text)
	var fragments []string
	prev := 0
	for _, r := range regions {
		appendFragment(&fragments, string(origRunes[prev:r.start]))
		prev = r.end
	}
	appendFragment(&fragments, string(origRunes[prev:]))
	return fragments
}

const minFragmentRunes = 12

func appendFragment(fragments *[]string, raw string) {
	frag := strings.Trim(strings.TrimSpace(raw), ",.;:")
	if len([]rune(frag)) >= minFragmentRunes {
		*fragments = append(*fragments, frag)
	}
}

// draftTitle seeds the child title from the fragment's first words,
// falling back to the parent title.
func draftTitle(parent, fragment string) string {
	words := strings.Fields(fragment)
	if len(words) == 0 {
		return parent
	}
	if len(words) > 8 {
		words = words[:8]
	}
	title := strings.Join(words, " ")
	// Capitalize the first rune, not the first byte: fragments can
	// start with a multibyte letter ("Écrire").
	r, size := utf8.DecodeRuneInString(title)
	return string(unicode.ToUpper(r)) + title[size:]
}

// normalize lowercases the input, folds punctuation and symbol runs to
// a single space, and wraps the result in sentinel spaces to keep the
// padded patterns word-bounded. Sentinels carry OrigIdx -1.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes)+2)
	origIdx := make([]int, 0, len(origRunes)+2)

	norm = append(norm, ' ')
	origIdx = append(origIdx, -1)

	for i, r := range origRunes {
		if isNoise(r) {
			if norm[len(norm)-1] != ' ' {
				norm = append(norm, ' ')
				origIdx = append(origIdx, i)
			}
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}

	norm = append(norm, ' ')
	origIdx = append(origIdx, len(origRunes))
	return textMapping{Normalized: norm, OrigIdx: origIdx}
}

// normalizeRunes applies the same folding to a dictionary pattern.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			if len(out) > 0 && out[len(out)-1] != ' ' {
				out = append(out, ' ')
			}
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return []rune(strings.TrimSpace(string(out)))
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
