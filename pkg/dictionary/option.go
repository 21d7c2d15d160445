package dictionary

import "github.com/khalid-nowaf/wordtrie/pkg/trie"

type Option func(*Dictionary) *Dictionary

func DefaultOptions() *Dictionary {
	return &Dictionary{
		words: trie.New(),
	}
}

// WithFailFast makes bulk loads abort on the first invalid word instead of
// skipping it and carrying on.
func WithFailFast() Option {
	return func(d *Dictionary) *Dictionary {
		d.failFast = true
		return d
	}
}
