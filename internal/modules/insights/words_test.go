package insights

import "testing"

func TestWordFrequencies_CountsContentWords(t *testing.T) {
	words, err := WordFrequencies("I am grateful for my grateful family")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := map[string]int{}
	for _, w := range words {
		counts[w.Text] = w.Count
	}

	if counts["grateful"] != 2 {
		t.Errorf("expected grateful counted twice, got %d", counts["grateful"])
	}
	if counts["family"] != 1 {
		t.Errorf("expected family counted once, got %d", counts["family"])
	}
}

func TestWordFrequencies_SortedByCountDescending(t *testing.T) {
	words, err := WordFrequencies("sunshine sunshine sunshine coffee coffee garden")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(words); i++ {
		if words[i].Count > words[i-1].Count {
			t.Errorf("expected descending counts, got %v before %v", words[i-1], words[i])
		}
	}
}

func TestWordFrequencies_DropsStopAndShortWords(t *testing.T) {
	words, err := WordFrequencies("the day was good and we go up")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range words {
		if stopWords[w.Text] {
			t.Errorf("stop word %q leaked into results", w.Text)
		}
		if len(w.Text) <= 2 {
			t.Errorf("short token %q leaked into results", w.Text)
		}
	}
}

func TestWordFrequencies_Lowercases(t *testing.T) {
	words, err := WordFrequencies("Sunshine sunshine SUNSHINE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, w := range words {
		if w.Text == "sunshine" {
			if w.Count != 3 {
				t.Errorf("expected case-folded count 3, got %d", w.Count)
			}
			return
		}
	}
	t.Error("expected sunshine in results")
}

func TestWordFrequencies_EmptyText(t *testing.T) {
	words, err := WordFrequencies("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("expected no words, got %v", words)
	}
}

func TestWordFrequencies_CapsAtLimit(t *testing.T) {
	// Build text with more than 100 distinct nouns.
	var text string
	names := []string{
		"apple", "banana", "cherry", "date", "elderberry", "fig", "grape",
		"honeydew", "kiwi", "lemon", "mango", "nectarine", "orange", "peach",
	}
	for _, a := range names {
		for _, b := range names {
			text += a + b + " "
		}
	}

	words, err := WordFrequencies(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) > maxWords {
		t.Errorf("expected at most %d words, got %d", maxWords, len(words))
	}
}
