// Package catalog loads the card content the scheduler is paired with.
// It is a thin boundary over a JSON deck file; the review state store
// never reads card content and the catalog never reads review state.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
)

// Card is a single bilingual flashcard as supplied by the deck file.
type Card struct {
	ID           string            `json:"id"`
	Kikuyu       string            `json:"kikuyu"`
	English      string            `json:"english"`
	Category     string            `json:"category"`
	Difficulty   models.Difficulty `json:"difficulty"`
	CulturalNote string            `json:"culturalNote,omitempty"`
}

// Catalog is an in-memory deck indexed by card id.
type Catalog struct {
	cards []Card
	byID  map[string]Card
}

// Load reads a deck file. Cards with empty ids are rejected so review
// records always key cleanly.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read deck file: %w", err)
	}

	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("malformed deck file %s: %w", path, err)
	}

	byID := make(map[string]Card, len(cards))
	for _, c := range cards {
		if c.ID == "" {
			return nil, fmt.Errorf("deck file %s contains a card without an id", path)
		}
		byID[c.ID] = c
	}

	return &Catalog{cards: cards, byID: byID}, nil
}

// Cards returns all cards in deck order.
func (c *Catalog) Cards() []Card {
	return c.cards
}

// ByID looks up one card.
func (c *Catalog) ByID(id string) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// Filter returns cards matching a category (empty matches all) and any of
// the given difficulties (empty matches all), in deck order.
func (c *Catalog) Filter(category string, difficulties []models.Difficulty) []Card {
	var out []Card
	for _, card := range c.cards {
		if category != "" && card.Category != category {
			continue
		}
		if len(difficulties) > 0 && !slices.Contains(difficulties, card.Difficulty) {
			continue
		}
		out = append(out, card)
	}
	return out
}

// NewCards returns cards that have no review record yet, in deck order.
func (c *Catalog) NewCards(records map[string]models.ReviewRecord) []Card {
	var out []Card
	for _, card := range c.cards {
		if _, studied := records[card.ID]; !studied {
			out = append(out, card)
		}
	}
	return out
}
