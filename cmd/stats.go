package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		recent, _ := cmd.Flags().GetInt("recent")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		events := st.EventRepo()

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if snap == nil || snap.Data.Progress == nil {
			fmt.Println("No sessions yet. Run `typorax play` to start.")
			return nil
		}
		p := snap.Data.Progress

		fmt.Println("Progress")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Total XP:        %d\n", p.TotalXP)
		fmt.Printf("Lessons:         %d completed, %d failed\n", p.SessionsCompleted, p.SessionsFailed)
		fmt.Printf("Day streak:      %d (best %d)\n", p.DayStreak, p.BestDayStreak)
		if g := snap.Data.Gems; g != nil {
			fmt.Printf("Gems:            %d\n", g.Total)
		}
		if len(p.ByLanguage) > 0 {
			langs := lo.Keys(p.ByLanguage)
			sort.Strings(langs)
			parts := lo.Map(langs, func(l string, _ int) string {
				return fmt.Sprintf("%s %d", l, p.ByLanguage[l])
			})
			fmt.Printf("By language:     %s\n", strings.Join(parts, ", "))
		}

		week, err := lessons.LoadWeek(ctx, events, time.Now())
		if err != nil {
			return err
		}
		if week.Sessions > 0 {
			fmt.Println()
			fmt.Println("Last 7 days")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("Sessions:        %d (%d completed)\n", week.Sessions, week.Completed)
			fmt.Printf("Practice time:   %d min\n", week.Minutes)
			fmt.Printf("XP earned:       %d\n", week.XP)
			fmt.Printf("Avg accuracy:    %d%%\n", week.AvgAccuracy)
			fmt.Printf("Improvement:     %+.2f pts\n", week.Improvement)
		}

		acc, err := events.AccuracyByType(ctx)
		if err != nil {
			return fmt.Errorf("query accuracy: %w", err)
		}
		hints, err := events.HintCounts(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query hints: %w", err)
		}
		if len(acc) > 0 {
			fmt.Println()
			fmt.Println("Accuracy by exercise type")
			fmt.Println(strings.Repeat("─", 48))
			for _, a := range acc {
				fmt.Printf("%-14s  %4d/%-4d  %3d%%  %3d hints\n",
					a.ExerciseType, a.Correct, a.Total, percent(a.Correct, a.Total), hints[a.ExerciseType])
			}
		}

		mistakes, err := events.MistakeCounts(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query mistakes: %w", err)
		}
		if len(mistakes) > 0 {
			fmt.Println()
			fmt.Println("Mistakes")
			fmt.Println(strings.Repeat("─", 48))
			cats := lo.Keys(mistakes)
			sort.Slice(cats, func(i, j int) bool {
				if mistakes[cats[i]] != mistakes[cats[j]] {
					return mistakes[cats[i]] > mistakes[cats[j]]
				}
				return cats[i] < cats[j]
			})
			for _, c := range cats {
				label := c
				if info := diagnosis.Lookup(diagnosis.Category(c)); info != nil {
					label = info.Label
				}
				fmt.Printf("%-24s  %4d\n", label, mistakes[c])
			}
		}

		sums, err := events.QuerySessionSummaries(ctx, store.QueryOpts{Limit: recent})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sums) > 0 {
			fmt.Println()
			fmt.Println("Recent sessions")
			fmt.Println(strings.Repeat("─", 48))
			for _, s := range sums {
				mark := "✓"
				if s.Phase != "completed" {
					mark = "✗"
				}
				fmt.Printf("%s %s  %-9s %3d%%  +%d XP  %s\n",
					mark, s.Timestamp.Local().Format("2006-01-02"), s.Language, s.Accuracy, s.XP, s.LessonTitle)
			}
		}
		return nil
	},
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return n * 100 / total
}

func init() {
	statsCmd.Flags().IntP("recent", "n", 5, "Number of recent sessions to show")
}
