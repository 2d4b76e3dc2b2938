package invest

import (
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"storysplit/domain"
)

func newTestSplitter(t *testing.T) Splitter {
	t.Helper()
	data, err := NewKeywordLoader(KeywordFiles).LoadAll("keywords")
	require.NoError(t, err)
	splitter, err := NewSplitter(data, slog.Default())
	require.NoError(t, err)
	return splitter
}

func TestLoader_Embedded_Dictionaries(t *testing.T) {
	req := require.New(t)

	data, err := NewKeywordLoader(KeywordFiles).LoadAll("keywords")

	req.NoError(err)
	req.Contains(data.ByLanguage, "en")
	req.Contains(data.ByLanguage, "fr")
	req.Contains(data.ByLanguage["en"], "and")
	req.NotEmpty(data.Languages)
}

func TestSplitter_Compound_Story_Yields_Drafts(t *testing.T) {
	req := require.New(t)
	splitter := newTestSplitter(t)
	story := domain.Story{
		Title:       "Checkout and refunds",
		Description: "As a shopper I want to pay with a saved card and I want to receive a refund confirmation by email afterwards.",
		Priority:    domain.PriorityHigh,
	}

	drafts := splitter.Propose(story)

	req.GreaterOrEqual(len(drafts), 2)
	for _, d := range drafts {
		req.NotEmpty(d.Title)
		req.NotEmpty(d.Description)
		// Children inherit the parent's priority
		req.Equal(domain.PriorityHigh, d.Priority)
	}
}

func TestSplitter_Atomic_Story_Yields_Nothing(t *testing.T) {
	req := require.New(t)
	splitter := newTestSplitter(t)
	story := domain.Story{
		Title:       "Saved card payment",
		Description: "As a shopper I want to pay with a saved card so that checkout is faster.",
	}

	req.Empty(splitter.Propose(story))
}

func TestSplitter_Empty_Description(t *testing.T) {
	req := require.New(t)
	splitter := newTestSplitter(t)

	req.Empty(splitter.Propose(domain.Story{Title: "no body", Description: "   "}))
}

func TestSplitter_Draft_Titles_Stay_Valid_UTF8(t *testing.T) {
	req := require.New(t)
	splitter := newTestSplitter(t)
	story := domain.Story{
		Title:       "Rapport mensuel",
		Description: "écrire le rapport mensuel de ventes puis envoyer la synthèse aux responsables régionaux.",
		Priority:    domain.PriorityMedium,
	}

	drafts := splitter.Propose(story)

	req.GreaterOrEqual(len(drafts), 2)
	for _, d := range drafts {
		req.True(utf8.ValidString(d.Title), "title %q is not valid UTF-8", d.Title)
	}
	// The first fragment starts with a multibyte letter that must
	// survive capitalization intact.
	req.True(strings.HasPrefix(drafts[0].Title, "Écrire"), "got %q", drafts[0].Title)
}

func TestSplitter_Keyword_Inside_Word_Does_Not_Match(t *testing.T) {
	req := require.New(t)
	splitter := newTestSplitter(t)
	story := domain.Story{
		Title:       "Band management",
		Description: "As a band manager I want a standalone planning view so that rehearsals are organized.",
	}

	// "and" appears inside "band" and "standalone" but never as a word.
	req.Empty(splitter.Propose(story))
}
