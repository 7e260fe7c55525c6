package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/catalog"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/config"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/planner"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/progress"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/scheduler"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/store"
)

var (
	studyCategory     string
	studyDifficulties string
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a study session",
	Long: `Start a study session covering the cards due for review plus
today's quota of new cards. Rate each card easy, medium or hard.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		deck, err := catalog.Load(cfg.DeckPath)
		if err != nil {
			fmt.Println("❌ Cannot load card deck:", err)
			return
		}

		prefs := loadPreferences(s)
		difficulties := prefs.DefaultDifficulty
		if studyDifficulties != "" {
			difficulties, err = parseDifficulties(studyDifficulties)
			if err != nil {
				fmt.Println("❌", err)
				return
			}
		}

		records := loadRecords(s)
		now := time.Now()
		cards := pickSessionCards(deck, records, studyCategory, difficulties, now)
		if len(cards) == 0 {
			fmt.Println("✅ Nothing to study right now. Come back later!")
			return
		}

		session := models.SessionRecord{
			ID:               uuid.NewString(),
			Category:         studyCategory,
			DifficultyFilter: difficulties,
			StartTime:        now,
		}

		reader := bufio.NewReader(os.Stdin)

		for i, card := range cards {
			fmt.Println("\n========================================")
			fmt.Printf("Card [%d/%d] (%s, %s)\n", i+1, len(cards), card.Category, card.Difficulty)
			fmt.Printf("\n    %s\n", card.Kikuyu)
			fmt.Println("\nPress Enter to flip...")
			reader.ReadString('\n')

			fmt.Printf("    %s\n", card.English)
			if prefs.ShowCulturalNotes && card.CulturalNote != "" {
				fmt.Printf("\n📖 %s\n", card.CulturalNote)
			}

			fmt.Print("\nHow was your recall? (easy/medium/hard or e/m/h, s to stop): ")
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)
			if input == "s" || input == "stop" {
				break
			}

			rating, err := models.ParseRating(input)
			if err != nil {
				fmt.Println("⚠️ Invalid rating, skipping this card.")
				continue
			}

			updated, err := rateCard(s, card.ID, rating, now)
			if err != nil {
				fmt.Println("⚠️ Progress may not have saved:", err)
				continue
			}
			fmt.Printf("✅ Next review in %s.\n", formatInterval(updated.IntervalDays))

			session.CardsStudied++
			if rating != models.RatingHard {
				session.CorrectAnswers++
			}
		}

		if session.CardsStudied == 0 {
			fmt.Println("\nSession ended with no cards studied.")
			return
		}

		finishSession(s, session)
	},
}

// rateCard applies a rating to a card and persists the resulting record.
// now is the session clock, so every record produced in one session is
// scheduled against the same moment the session was planned from.
func rateCard(s *store.Store, cardID string, rating models.Rating, now time.Time) (models.ReviewRecord, error) {
	prev, err := s.GetRecord(cardID)
	if err != nil {
		return models.ReviewRecord{}, err
	}
	updated := scheduler.Next(cardID, prev, rating, now)
	if err := s.PutRecord(updated); err != nil {
		return models.ReviewRecord{}, err
	}
	return updated, nil
}

// pickSessionCards assembles due reviews first, then new cards up to the
// daily quota, honoring the category and difficulty filters.
func pickSessionCards(deck *catalog.Catalog, records map[string]models.ReviewRecord, category string, difficulties []models.Difficulty, now time.Time) []catalog.Card {
	allowed := make(map[string]catalog.Card)
	for _, card := range deck.Filter(category, difficulties) {
		allowed[card.ID] = card
	}

	load := planner.StudyLoad(records, now)

	var cards []catalog.Card
	reviews := 0
	for _, id := range planner.DueCardIDs(records, now) {
		if reviews == load.ReviewCards {
			break
		}
		if card, ok := allowed[id]; ok {
			cards = append(cards, card)
			reviews++
		}
	}

	fresh := 0
	for _, card := range deck.NewCards(records) {
		if fresh == load.NewCards {
			break
		}
		if _, ok := allowed[card.ID]; ok {
			cards = append(cards, card)
			fresh++
		}
	}

	return cards
}

// finishSession persists the session and rolls it into stats and streak.
// Failures are reported but never fatal.
func finishSession(s *store.Store, session models.SessionRecord) {
	now := time.Now()

	if err := s.AppendSession(session); err != nil {
		fmt.Println("⚠️ Session history may not have saved:", err)
	}

	agg := progress.New(s)

	// The streak compares against the previous study day, so it has to be
	// reconciled before anything advances the last study date.
	streak, err := agg.UpdateStreak(now)
	if err != nil {
		fmt.Println("⚠️ Streak may not have updated:", err)
	}

	if err := agg.RecordCardsStudied(session.CardsStudied, now); err != nil {
		fmt.Println("⚠️ Stats may not have saved:", err)
	}
	if err := agg.RecordSessionCompleted(now); err != nil {
		fmt.Println("⚠️ Stats may not have saved:", err)
	}
	minutes := int(now.Sub(session.StartTime).Minutes())
	if minutes > 0 {
		if err := agg.AddStudyTime(minutes); err != nil {
			fmt.Println("⚠️ Stats may not have saved:", err)
		}
	}

	fmt.Println("\n🎉 Session complete!")
	fmt.Printf("Cards studied: %d (%d recalled)\n", session.CardsStudied, session.CorrectAnswers)
	if streak > 0 {
		fmt.Printf("🔥 Study streak: %d day(s)\n", streak)
	}
}

func parseDifficulties(csv string) ([]models.Difficulty, error) {
	var out []models.Difficulty
	for _, part := range strings.Split(csv, ",") {
		d, err := models.ParseDifficulty(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func formatInterval(days float64) string {
	if days < 1 {
		return fmt.Sprintf("%d hours", int(days*24))
	}
	return fmt.Sprintf("%d day(s)", int(days))
}

func init() {
	rootCmd.AddCommand(studyCmd)
	studyCmd.Flags().StringVarP(&studyCategory, "category", "c", "", "Limit the session to one category")
	studyCmd.Flags().StringVarP(&studyDifficulties, "difficulty", "d", "", "Comma-separated difficulties (e.g. beginner,intermediate)")
}
