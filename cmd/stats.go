package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/planner"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics and progress insights",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		stats := loadStats(s)
		ins := planner.AggregateInsights(loadRecords(s), time.Now())

		fmt.Println("\n📊 Study Statistics")
		fmt.Println("===================")
		fmt.Printf("Cards studied:      %d\n", stats.TotalCardsStudied)
		fmt.Printf("Sessions completed: %d\n", stats.TotalSessionsCompleted)
		fmt.Printf("Time spent:         %d min\n", stats.TotalTimeSpentMinutes)
		if !stats.LastStudyDate.IsZero() {
			fmt.Printf("Last studied:       %s\n", stats.LastStudyDate.Format("2006-01-02"))
		}
		fmt.Printf("Current streak:     %d day(s)\n", stats.StreakCount)

		fmt.Println("\n📈 Card Progress")
		fmt.Println("----------------")
		fmt.Printf("Tracked cards:   %d\n", ins.TotalCards)
		fmt.Printf("Due today:       %d\n", ins.DueToday)
		fmt.Printf("Due soon (3d):   %d\n", ins.DueSoon)
		fmt.Printf("Mastered (>21d): %d\n", ins.Mastered)
		fmt.Printf("Learning:        %d\n", ins.Learning)
		if ins.TotalCards > 0 {
			fmt.Printf("Average ease:    %.2f\n", ins.AverageEaseFactor)
		}

		sessions, err := s.Sessions(5)
		if err != nil {
			fmt.Println("⚠️ Could not read session history:", err)
			return
		}
		if len(sessions) > 0 {
			fmt.Println("\n🕑 Recent Sessions")
			fmt.Println("------------------")
			for _, sess := range sessions {
				fmt.Printf("%s  %d card(s), %d recalled\n",
					sess.StartTime.Format("2006-01-02 15:04"), sess.CardsStudied, sess.CorrectAnswers)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
