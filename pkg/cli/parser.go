package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Record map[string]string

// parseFile reads one word list file and calls onEachWord for every word in
// it. The format is picked by extension: .json and .csv carry records keyed
// by wordKey, anything else is plain text with one word per line.
func parseFile(path string, wordKey string, onEachWord func(word string) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJson(path, wordKey, onEachWord)
	case ".csv":
		return parseCsv(path, wordKey, onEachWord)
	default:
		return parseText(path, onEachWord)
	}
}

// parseText reads one word per line, skipping blanks and # comments.
func parseText(path string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := onEachWord(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseJson streams an array of records without holding the whole file.
func parseJson(path string, wordKey string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return err
		}
		word, err := wordOf(record, wordKey, path)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	return nil
}

// parseCsv maps each row onto the header line and picks the word column.
func parseCsv(path string, wordKey string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// The first line is the header and names the columns.
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		recordData, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		word, err := wordOf(record, wordKey, path)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	return nil
}

func wordOf(record Record, wordKey string, path string) (string, error) {
	word, found := record[wordKey]
	if !found {
		return "", fmt.Errorf("record in %s has no %q field: %v", path, wordKey, record)
	}
	return word, nil
}
