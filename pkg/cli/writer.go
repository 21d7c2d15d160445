package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/wordtrie/pkg/dictionary"
)

// Writer persists the stored word list in one output format.
type Writer interface {
	Write(dict *dictionary.Dictionary, path string, wordKey string) error
}

// writerFor picks a writer by the output file extension.
func writerFor(path string, stats *Stats) (Writer, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return JsonWriter{Stats: stats}, nil
	case ".csv":
		return CsvWriter{Stats: stats}, nil
	case ".txt", "":
		return TextWriter{Stats: stats}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
}

type TextWriter struct {
	Stats *Stats
}

func (w TextWriter) Write(dict *dictionary.Dictionary, path string, wordKey string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, word := range dict.Words() {
		if _, err := fmt.Fprintln(file, word); err != nil {
			return err
		}
		w.Stats.Written++
	}
	return nil
}

type CsvWriter struct {
	Stats *Stats
}

func (w CsvWriter) Write(dict *dictionary.Dictionary, path string, wordKey string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// The header names the word column, so the file loads back with the same
	// --word-key.
	if err := writer.Write([]string{wordKey}); err != nil {
		return err
	}

	for _, word := range dict.Words() {
		if err := writer.Write([]string{word}); err != nil {
			return err
		}
		w.Stats.Written++
	}
	return nil
}

type JsonWriter struct {
	Stats *Stats
}

func (w JsonWriter) Write(dict *dictionary.Dictionary, path string, wordKey string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	if _, err := file.Write([]byte("[")); err != nil {
		return err
	}
	for i, word := range dict.Words() {
		if i > 0 {
			if _, err := file.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err := encoder.Encode(Record{wordKey: word}); err != nil {
			return err
		}
		w.Stats.Written++
	}
	if _, err := file.Write([]byte("]")); err != nil {
		return err
	}

	return nil
}

// Stats accumulates what a command did, for the closing summary line.
type Stats struct {
	Loaded     int
	Added      int
	Duplicates int
	Invalid    int
	Removed    int
	Written    int
}

func (s *Stats) String() string {
	str := fmt.Sprintf("loaded %d words: %d added, %d duplicates, %d invalid", s.Loaded, s.Added, s.Duplicates, s.Invalid)

	if s.Removed > 0 {
		str += fmt.Sprintf(" | removed %d", s.Removed)
	}
	if s.Written > 0 {
		str += fmt.Sprintf(" | wrote %d", s.Written)
	}

	return str
}
