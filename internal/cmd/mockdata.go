package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	csvstore "github.com/mindflow-labs/mindflow-agent/internal/adapters/storage/csvstore"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

var (
	mockdataDir  string
	mockdataDays int
	mockdataSeed int64
)

var mockdataCmd = &cobra.Command{
	Use:   "mockdata",
	Short: "Generate demo journal and plan CSV files",
	Long: `Generates a week of plausible journal entries plus a demo plan so the
dashboard has data to chart. Energy trends upward over the period.`,
	RunE: runMockdata,
}

func init() {
	rootCmd.AddCommand(mockdataCmd)

	mockdataCmd.Flags().StringVarP(&mockdataDir, "dir", "d", "data", "Directory for the generated CSV files")
	mockdataCmd.Flags().IntVar(&mockdataDays, "days", 7, "Number of past days to cover")
	mockdataCmd.Flags().Int64Var(&mockdataSeed, "seed", 0, "Random seed (0 = time-based)")
}

var demoMoods = []string{"Anxious", "Tired", "Flowing", "Motivated", "Stuck", "Relieved", "Energetic"}

var demoNotes = []string{
	"Completed 10 pushups despite feeling tired.",
	"Wrote 300 words for thesis.",
	"Did a micro-meditation session.",
	"Cleaned the desk to prepare for tomorrow.",
	"Almost gave up but Starter helped me do 1 rep.",
	"Had a great deep work session.",
	"Set up the alarm for early morning run.",
	"Did 5 pushups before breakfast.",
	"Completed morning routine despite low energy.",
	"Felt accomplished after finishing the task.",
}

func runMockdata(cmd *cobra.Command, args []string) error {
	seed := mockdataSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store, err := csvstore.NewStore(mockdataDir)
	if err != nil {
		return err
	}

	base := time.Now().AddDate(0, 0, -mockdataDays)

	if err := store.SaveProfile(&domain.Profile{
		Vision: "Lose 6kg of fat in 12 weeks",
		System: "Do 30 push-ups every day",
	}); err != nil {
		return err
	}

	count := 0
	for day := 0; day < mockdataDays; day++ {
		current := base.AddDate(0, 0, day)

		// 1-2 evening entries per day, energy drifting upward.
		for n := 0; n < 1+rng.Intn(2); n++ {
			logTime := time.Date(current.Year(), current.Month(), current.Day(),
				18+rng.Intn(6), rng.Intn(60), 0, 0, time.Local)

			energy := 3 + rng.Intn(4) + day/2
			if energy > 10 {
				energy = 10
			}

			entry := &domain.JournalEntry{
				Timestamp: logTime,
				Mood:      demoMoods[rng.Intn(len(demoMoods))],
				Energy:    energy,
				Note:      demoNotes[rng.Intn(len(demoNotes))],
			}
			if err := store.AppendEntry(entry); err != nil {
				return err
			}
			count++
		}
	}

	fmt.Printf("Generated %d journal entries and 1 plan in %s\n", count, mockdataDir)
	return nil
}
