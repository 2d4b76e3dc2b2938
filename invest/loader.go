// Package invest implements the heuristic analysis behind the agents:
// INVEST criterion scoring and conjunction-based split proposals.
// Everything here is deterministic string work, no model inference.
package invest

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"

	"storysplit/errors"
)

//go:embed keywords/*
var KeywordFiles embed.FS

// KeywordData carries one dictionary per language (e.g., "en", "fr").
type KeywordData struct {
	ByLanguage map[string][]string
	Languages  []string
}

// KeywordLoader reads split keywords from embedded .txt files, one
// file per language, one keyword or phrase per line.
type KeywordLoader struct {
	fs embed.FS
}

func NewKeywordLoader(f embed.FS) *KeywordLoader {
	return &KeywordLoader{fs: f}
}

// LoadAll scans the given directory in the embedded FS. The filename
// is the language code ("en.txt" -> "en"). Dictionaries stay separate
// because the splitter picks one automaton per detected language.
func (l *KeywordLoader) LoadAll(path string) (*KeywordData, error) {
	entries, err := fs.ReadDir(l.fs, path)
	if err != nil {
		return nil, err
	}

	data := &KeywordData{ByLanguage: make(map[string][]string)}

	for _, entry := range entries {
		if entry.IsDir() {
			return nil, errors.ErrOnlyKeywordFiles
		}

		lang := strings.TrimSuffix(entry.Name(), ".txt")

		raw, err := l.fs.ReadFile(path + "/" + entry.Name())
		if err != nil {
			return nil, err
		}

		// A scanner handles \n and \r\n line endings alike
		var words []string
		scanner := bufio.NewScanner(bytes.NewReader(raw))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				words = append(words, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}

		if len(words) > 0 {
			data.ByLanguage[lang] = words
			data.Languages = append(data.Languages, lang)
		}
	}

	if len(data.ByLanguage) == 0 {
		return nil, errors.ErrEmptyKeywords
	}

	return data, nil
}
