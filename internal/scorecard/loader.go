package scorecard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File is a card together with where it came from.
type File struct {
	Path string
	Card Card
}

// FormatExtensions lists the file extensions cards are read from.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}

// LoadFile reads a single card, choosing the parser by extension.
func LoadFile(path string) (Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Card{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	card, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Card{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return card, nil
}

// LoadAll loads every card under root, sorted by path. It stops at the
// first card that fails to parse.
func LoadAll(root string) ([]File, error) {
	var files []File

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		card, err := LoadFile(path)
		if err != nil {
			return err
		}
		files = append(files, File{Path: path, Card: card})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// SaveFile writes a card, choosing the format by extension.
func SaveFile(path string, card Card) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var err error
		if data, err = MarshalYAML(card); err != nil {
			return err
		}
	case ".txt":
		data = MarshalText(card)
	default:
		return fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (Card, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt":
		return ParseText(data)
	default:
		return Card{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
