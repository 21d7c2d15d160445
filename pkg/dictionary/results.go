package dictionary

import "fmt"

// records a word a bulk load rejected, and why
type InvalidWord struct {
	Word   string
	Reason string
}

// records the outcome of a bulk load for reporting
type LoadResult struct {
	Added      int
	Duplicates int
	Invalid    []InvalidWord
}

func (r *LoadResult) String() string {
	str := fmt.Sprintf("added %d", r.Added)

	if r.Duplicates > 0 {
		str += fmt.Sprintf(" | skipped %d duplicates", r.Duplicates)
	}

	if len(r.Invalid) > 0 {
		str += fmt.Sprintf(" | rejected %d invalid [", len(r.Invalid))
		for _, invalid := range r.Invalid {
			str += fmt.Sprintf("%s ", invalid.Word)
		}
		str += "]"
	}

	return str
}

// records what a lookup learned about one word
type LookupResult struct {
	Word        string
	Found       bool
	IsPrefix    bool
	Completions []string
}

func (r *LookupResult) String() string {
	str := fmt.Sprintf("%q: ", r.Word)

	switch {
	case r.Found:
		str += "stored word"
	case r.IsPrefix:
		str += "prefix of stored words"
	default:
		str += "not found"
		return str
	}

	if len(r.Completions) > 0 {
		str += fmt.Sprintf(" | completions: %v", r.Completions)
	}

	return str
}
