package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current daily study streak",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		stats := loadStats(s)
		if stats.StreakCount == 0 {
			fmt.Println("No streak yet. Study today to start one!")
			return
		}

		fmt.Printf("🔥 %d day streak", stats.StreakCount)
		if !stats.StreakStartDate.IsZero() {
			fmt.Printf(" (since %s)", stats.StreakStartDate.Format("2006-01-02"))
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
