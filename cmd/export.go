package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all progress to a JSON snapshot",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "kikuyu-hub-export.json"
		if len(args) > 0 {
			path = args[0]
		}

		s, err := openStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer s.Close()

		snap, err := s.ExportAll(time.Now())
		if err != nil {
			fmt.Println("❌ Export failed:", err)
			return
		}

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			fmt.Println("❌ Export failed:", err)
			return
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Println("❌ Could not write snapshot:", err)
			return
		}

		fmt.Printf("✅ Exported %d record(s) to %s\n", len(snap.Records), path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
