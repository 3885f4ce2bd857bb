package insights

import (
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
)

// maxWords caps the word-frequency result.
const maxWords = 100

// stopWords are common words excluded from the frequency list even when
// the tagger classes them as content words.
var stopWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
		"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
		"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
		"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
		"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
		"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
		"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
		"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
		"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
		"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",
		"is", "was", "are", "were", "been", "being", "am", "has", "had",
		"does", "did", "doing", "should", "might", "must",
		"shall", "may", "need", "ought", "dare", "used",
	} {
		stopWords[w] = true
	}
}

// WordFrequency is one word and how often it appeared.
type WordFrequency struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// WordFrequencies extracts the most frequent content words from free text.
// The text is part-of-speech tagged and only nouns, verbs, and adjectives
// are kept; tokens are lowercased and trimmed, stop words and tokens of
// two characters or fewer are dropped. Results are sorted by descending
// count with first-encounter order breaking ties, capped at 100 words.
func WordFrequencies(text string) ([]WordFrequency, error) {
	if strings.TrimSpace(text) == "" {
		return []WordFrequency{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	var order []string
	for _, tok := range doc.Tokens() {
		if !isContentTag(tok.Tag) {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(tok.Text))
		if len(word) <= 2 || stopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	out := make([]WordFrequency, 0, len(order))
	for _, word := range order {
		out = append(out, WordFrequency{Text: word, Count: counts[word]})
	}

	// Stable sort keeps encounter order within equal counts.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > maxWords {
		out = out[:maxWords]
	}
	return out, nil
}

// isContentTag reports whether a Penn Treebank tag marks a noun, verb, or
// adjective.
func isContentTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") ||
		strings.HasPrefix(tag, "VB") ||
		strings.HasPrefix(tag, "JJ")
}
