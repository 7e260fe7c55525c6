package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/catalog"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/config"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/planner"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show cards due for review",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		records := loadRecords(s)
		now := time.Now()
		ids := planner.DueCardIDs(records, now)
		if len(ids) == 0 {
			fmt.Println("✅ No cards due for review. Wĩ mwega!")
			return
		}

		// Deck content is optional here; without it we still list the ids.
		deck, deckErr := catalog.Load(config.Load().DeckPath)
		if deckErr != nil {
			fmt.Println("⚠️ Cannot load card deck:", deckErr)
		}

		fmt.Printf("🔥 %d card(s) due for review:\n\n", len(ids))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Card\tCategory\tDifficulty\tDue Since")
		fmt.Fprintln(w, "----\t--------\t----------\t---------")

		for _, id := range ids {
			rec := records[id]
			front, category, difficulty := id, "?", "?"
			if deck != nil {
				if card, ok := deck.ByID(id); ok {
					front = card.Kikuyu
					category = card.Category
					difficulty = string(card.Difficulty)
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				front, category, difficulty, rec.NextReviewAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
}
