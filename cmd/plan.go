package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's recommended study load",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		load := planner.StudyLoad(loadRecords(s), time.Now())

		fmt.Println("📋 Today's Study Plan")
		fmt.Println("---------------------")
		fmt.Printf("New cards:    %d\n", load.NewCards)
		fmt.Printf("Reviews due:  %d\n", load.ReviewCards)
		fmt.Printf("Total:        %d\n", load.Total)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
