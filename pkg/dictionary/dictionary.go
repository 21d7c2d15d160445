// Package dictionary wraps a word trie for application use: membership checks,
// autocomplete and bulk loading with per-word outcome reporting.
package dictionary

import (
	"errors"
	"log/slog"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// Dictionary is a set of words backed by one trie. It tracks the stored word
// count so callers never pay a full traversal for it.
type Dictionary struct {
	words    *trie.Trie
	size     int
	failFast bool
}

// New initializes an empty dictionary. Options are applied in order.
func New(opts ...Option) *Dictionary {
	d := DefaultOptions()
	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// Add stores a single word.
//
// Returns:
//   - true when the word was new, false when it was already stored.
//   - An error when the word is not a valid trie word.
func (d *Dictionary) Add(word string) (bool, error) {
	found, err := d.words.Contains(word)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}
	if err := d.words.Insert(word); err != nil {
		// Contains accepted the word, so Insert must too.
		panic("[BUG] Add: insert rejected a word that passed lookup: " + err.Error())
	}
	d.size++
	return true, nil
}

// AddAll loads a batch of words and accounts for every one of them: new words,
// duplicates, and invalid words. Invalid words are skipped and reported unless
// the dictionary was built WithFailFast, in which case the load stops at the
// first one and the partial result is returned with the error.
func (d *Dictionary) AddAll(words ...string) (*LoadResult, error) {
	result := &LoadResult{}

	for _, word := range words {
		added, err := d.Add(word)
		if err != nil {
			if d.failFast {
				return result, err
			}
			slog.Info("Skipped invalid word: " + err.Error())
			result.Invalid = append(result.Invalid, InvalidWord{Word: word, Reason: reasonOf(err)})
			continue
		}
		if added {
			result.Added++
		} else {
			result.Duplicates++
		}
	}

	return result, nil
}

// Remove deletes a word and prunes the nodes that served only that word.
//
// Returns:
//   - true when the word was stored, false when there was nothing to remove.
//   - An error when the word is not a valid trie word.
func (d *Dictionary) Remove(word string) (bool, error) {
	found, err := d.words.Contains(word)
	if err != nil || !found {
		return false, err
	}
	if err := d.words.Remove(word); err != nil {
		panic("[BUG] Remove: removal rejected a word that passed lookup: " + err.Error())
	}
	d.size--
	slog.Info("Removed stored word: " + word)
	return true, nil
}

// Contains reports whether the exact word is stored.
func (d *Dictionary) Contains(word string) (bool, error) {
	return d.words.Contains(word)
}

// ContainsPrefix reports whether at least one stored word starts with the
// given prefix.
func (d *Dictionary) ContainsPrefix(prefix string) (bool, error) {
	return d.words.ContainsPrefix(prefix)
}

// Complete lists the stored words starting with the prefix, in lexicographic
// order. A positive limit caps the list; limit <= 0 means no cap.
func (d *Dictionary) Complete(prefix string, limit int) ([]string, error) {
	words, err := d.words.WordsWithPrefix(prefix)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}

// Lookup gathers everything the dictionary knows about one word: whether it is
// stored, whether it leads to stored words, and its completions (capped at
// completionLimit when positive).
func (d *Dictionary) Lookup(word string, completionLimit int) (*LookupResult, error) {
	found, err := d.words.Contains(word)
	if err != nil {
		return nil, err
	}
	isPrefix, err := d.words.ContainsPrefix(word)
	if err != nil {
		return nil, err
	}

	result := &LookupResult{Word: word, Found: found, IsPrefix: isPrefix}
	if isPrefix {
		if result.Completions, err = d.Complete(word, completionLimit); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Words lists every stored word in lexicographic order.
func (d *Dictionary) Words() []string {
	return d.words.Words()
}

// Len reports how many words are stored.
func (d *Dictionary) Len() int {
	return d.size
}

// reasonOf extracts the validation reason when err is an input error, and
// falls back to the whole message otherwise.
func reasonOf(err error) string {
	var invalid *trie.InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.Reason
	}
	return err.Error()
}
