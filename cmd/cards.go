package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/catalog"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/config"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/scheduler"
)

var (
	cardsCategory   string
	cardsDifficulty string
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List deck cards and their review status",
	Run: func(cmd *cobra.Command, args []string) {
		deck, err := catalog.Load(config.Load().DeckPath)
		if err != nil {
			fmt.Println("❌ Cannot load card deck:", err)
			return
		}

		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		var difficulties []models.Difficulty
		if cardsDifficulty != "" {
			difficulties, err = parseDifficulties(cardsDifficulty)
			if err != nil {
				fmt.Println("❌", err)
				return
			}
		}

		records := loadRecords(s)
		now := time.Now()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Kikuyu\tEnglish\tCategory\tDifficulty\tStatus")
		fmt.Fprintln(w, "------\t-------\t--------\t----------\t------")

		for _, card := range deck.Filter(cardsCategory, difficulties) {
			status := "new"
			if rec, ok := records[card.ID]; ok {
				if scheduler.IsDue(rec, now) {
					status = "due"
				} else {
					status = "next " + rec.NextReviewAt.Format("2006-01-02")
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				card.Kikuyu, card.English, card.Category, card.Difficulty, status)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(cardsCmd)
	cardsCmd.Flags().StringVarP(&cardsCategory, "category", "c", "", "Filter by category")
	cardsCmd.Flags().StringVarP(&cardsDifficulty, "difficulty", "d", "", "Comma-separated difficulties")
}
