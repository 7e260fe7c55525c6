package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
)

const testDeck = `[
	{"id": "greet-001", "kikuyu": "Wĩ mwega?", "english": "How are you?", "category": "greetings", "difficulty": "beginner"},
	{"id": "greet-002", "kikuyu": "Nĩ mwega", "english": "I am fine", "category": "greetings", "difficulty": "beginner",
	 "culturalNote": "A common reply; greetings matter a great deal in Gĩkũyũ culture."},
	{"id": "num-001", "kikuyu": "ĩmwe", "english": "one", "category": "numbers", "difficulty": "intermediate"}
]`

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	deck, err := Load(writeDeck(t, testDeck))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(deck.Cards()) != 3 {
		t.Fatalf("loaded %d cards, want 3", len(deck.Cards()))
	}

	card, ok := deck.ByID("greet-002")
	if !ok {
		t.Fatal("greet-002 not found")
	}
	if card.English != "I am fine" || card.CulturalNote == "" {
		t.Errorf("card = %+v", card)
	}
}

func TestLoadRejectsBadDecks(t *testing.T) {
	if _, err := Load(writeDeck(t, "{not json")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := Load(writeDeck(t, `[{"kikuyu": "atĩa"}]`)); err == nil {
		t.Error("card without id accepted")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestFilter(t *testing.T) {
	deck, err := Load(writeDeck(t, testDeck))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		category     string
		difficulties []models.Difficulty
		wantIDs      []string
	}{
		{"no filters", "", nil, []string{"greet-001", "greet-002", "num-001"}},
		{"by category", "numbers", nil, []string{"num-001"}},
		{"by difficulty", "", []models.Difficulty{models.DifficultyBeginner}, []string{"greet-001", "greet-002"}},
		{"both", "greetings", []models.Difficulty{models.DifficultyIntermediate}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deck.Filter(tt.category, tt.difficulties)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d cards, want %d", len(got), len(tt.wantIDs))
			}
			for i, card := range got {
				if card.ID != tt.wantIDs[i] {
					t.Errorf("card[%d] = %s, want %s", i, card.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestNewCards(t *testing.T) {
	deck, err := Load(writeDeck(t, testDeck))
	if err != nil {
		t.Fatal(err)
	}

	records := map[string]models.ReviewRecord{
		"greet-001": {CardID: "greet-001"},
	}

	fresh := deck.NewCards(records)
	if len(fresh) != 2 || fresh[0].ID != "greet-002" || fresh[1].ID != "num-001" {
		t.Errorf("NewCards = %v", fresh)
	}
}
