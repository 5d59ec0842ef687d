package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Generate and inspect lessons",
}

var lessonGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a lesson and store it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		adaptive, _ := cmd.Flags().GetBool("adaptive")
		out, _ := cmd.Flags().GetString("out")

		language, topic, err := practiceTarget(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := buildServices(ctx, st, log)
		req := lessons.Request{Language: language, Topic: topic}
		if adaptive {
			a, err := lessons.AnalyzeHistory(ctx, st.EventRepo(), language)
			if err != nil {
				return fmt.Errorf("analyze history: %w", err)
			}
			req.Analysis = a
		}

		g := svc.lessons.Generate(ctx, req)
		if g.Cause != nil {
			fmt.Fprintln(os.Stderr, "Using the built-in lesson:", g.Cause)
		}

		if out != "" {
			b, err := json.MarshalIndent(g.Lesson, "", "  ")
			if err != nil {
				return fmt.Errorf("encode lesson: %w", err)
			}
			if err := os.WriteFile(out, append(b, '\n'), 0o644); err != nil {
				return fmt.Errorf("write lesson: %w", err)
			}
		}

		if g.ID > 0 {
			fmt.Printf("Stored lesson %d.\n\n", g.ID)
		}
		printLesson(g.Lesson)
		return nil
	},
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.EventRepo().QueryLessons(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query lessons: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No lessons stored yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-10s  %-12s  %-4s  %-8s  %s\n",
			"ID", "Created", "Language", "Topic", "Exs", "Source", "Title")
		fmt.Println(strings.Repeat("─", 90))
		for _, r := range recs {
			source := "llm"
			if r.Fallback {
				source = "built-in"
			}
			fmt.Printf("%-5d  %-16s  %-10s  %-12s  %-4d  %-8s  %s\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Language,
				truncate(r.Topic, 12),
				r.ExerciseCount,
				source,
				r.LessonTitle,
			)
		}
		return nil
	},
}

var lessonShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		l, err := loadStoredLesson(cmd, st, id)
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(l)
		}
		printLesson(l)
		return nil
	},
}

var lessonCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a lesson JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := exercise.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %q has %d exercises.\n", l.Title, l.Len())
		return nil
	},
}

func printLesson(l exercise.Lesson) {
	fmt.Println(l.Title)
	if l.Description != "" {
		fmt.Println(l.Description)
	}
	fmt.Println(strings.Repeat("─", 60))
	for i, ex := range l.Exercises {
		fmt.Printf("%d. [%s] %s\n", i+1, ex.Type, ex.Question)
		if len(ex.Options) > 0 {
			fmt.Printf("   options: %s\n", strings.Join(ex.Options, " | "))
		}
		fmt.Printf("   answer:  %s\n", ex.CorrectAnswer)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func init() {
	lessonGenerateCmd.Flags().String("language", "", "Lesson language (default from config)")
	lessonGenerateCmd.Flags().String("topic", "", "Lesson topic (default from config)")
	lessonGenerateCmd.Flags().Bool("adaptive", true, "Tailor the lesson to recent mistakes")
	lessonGenerateCmd.Flags().StringP("out", "o", "", "Also write the lesson JSON to a file")

	lessonListCmd.Flags().IntP("limit", "n", 20, "Number of lessons to show")
	lessonShowCmd.Flags().Bool("json", false, "Print the lesson as JSON")

	lessonCmd.AddCommand(lessonGenerateCmd)
	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonShowCmd)
	lessonCmd.AddCommand(lessonCheckCmd)
}
