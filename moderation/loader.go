package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"

	apperrors "roundtable/errors"
)

//go:embed wordlists/*
var wordlistsFS embed.FS

// Wordlists carries the loaded blacklist plus metadata for logging.
type Wordlists struct {
	Words     []string
	Languages []string
}

// LoadEmbedded parses the embedded per-language dictionaries. Each .txt file
// name is the language code ("en.txt" -> "en"), one word per line.
func LoadEmbedded() (*Wordlists, error) {
	entries, err := fs.ReadDir(wordlistsFS, "wordlists")
	if err != nil {
		return nil, err
	}

	var languages []string
	unique := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := wordlistsFS.ReadFile("wordlists/" + entry.Name())
		if err != nil {
			return nil, err
		}

		// A scanner handles both \n and \r\n line endings.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				unique[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(unique) == 0 {
		return nil, apperrors.ErrEmptyWords
	}

	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}

	return &Wordlists{Words: words, Languages: languages}, nil
}
