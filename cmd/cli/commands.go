package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"leembo/internal/domain"
	"leembo/internal/service"
	"leembo/internal/session"

	"github.com/spf13/cobra"
)

// mentorBuilder returns a ready mentor and a cleanup func.
type mentorBuilder func(ctx context.Context, verbose bool) (service.MentorService, func(), error)

func newRootCmd(build mentorBuilder) *cobra.Command {
	var verbose bool

	// withMentor builds the mentor lazily so --help never touches config.
	withMentor := func(run func(cmd *cobra.Command, args []string, mentor service.MentorService) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			mentor, cleanup, err := build(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			defer cleanup()
			return run(cmd, args, mentor)
		}
	}

	root := &cobra.Command{
		Use:          "leembo",
		Short:        "Personalized learning mentor",
		Long:         "Leembo assesses what you know about a topic, then curates resources, explains the topic and quizzes you.",
		SilenceUsage: true,
		RunE: withMentor(func(cmd *cobra.Command, _ []string, mentor service.MentorService) error {
			return runInteractive(cmd.Context(), mentor, cmd.InOrStdin(), cmd.OutOrStdout())
		}),
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generation details")

	root.AddCommand(
		newLearnCmd(withMentor),
		newTrendingCmd(withMentor),
		newCoursesCmd(withMentor),
	)
	return root
}

type mentorRunner func(run func(cmd *cobra.Command, args []string, mentor service.MentorService) error) func(*cobra.Command, []string) error

func newLearnCmd(withMentor mentorRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "learn <topic>",
		Short: "Assess, curate, explain and quiz a topic in one go",
		Args:  cobra.MinimumNArgs(1),
		RunE: withMentor(func(cmd *cobra.Command, args []string, mentor service.MentorService) error {
			pkg := mentor.LearnTopic(cmd.Context(), strings.Join(args, " "))
			printPackage(cmd.OutOrStdout(), pkg)
			return nil
		}),
	}
}

func newTrendingCmd(withMentor mentorRunner) *cobra.Command {
	var (
		limit int
		age   int
		prefs []string
	)
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "List trending educational topics",
		Args:  cobra.NoArgs,
		RunE: withMentor(func(cmd *cobra.Command, _ []string, mentor service.MentorService) error {
			topics := mentor.GetTrendingTopics(cmd.Context(), limit, age, prefs)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Trending topics:")
			for i, t := range topics {
				fmt.Fprintf(out, "%d. %s\n", i+1, t)
			}
			return nil
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultTopicLimit, "number of topics")
	cmd.Flags().IntVar(&age, "age", 0, "learner age, used to pick age-appropriate topics")
	cmd.Flags().StringSliceVarP(&prefs, "preferences", "p", nil, "interests to prioritize (comma-separated)")
	return cmd
}

func newCoursesCmd(withMentor mentorRunner) *cobra.Command {
	var (
		limit int
		topic string
		prefs []string
	)
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Recommend video courses",
		Args:  cobra.NoArgs,
		RunE: withMentor(func(cmd *cobra.Command, _ []string, mentor service.MentorService) error {
			courses := mentor.GetRecommendedCourses(cmd.Context(), prefs, topic, limit)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Recommended courses:")
			for i, c := range courses {
				fmt.Fprintf(out, "%d. %s (%s, %s, %.1f)\n   %s\n", i+1, c.Title, c.Platform, c.Duration, c.Rating, c.URL)
			}
			return nil
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultCourseLimit, "number of courses")
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "topic to find courses for")
	cmd.Flags().StringSliceVarP(&prefs, "preferences", "p", nil, "interests to consider (comma-separated)")
	return cmd
}

// runInteractive drives the two-phase flow: assess, let the learner approve
// or adjust, then generate the learning package.
func runInteractive(ctx context.Context, mentor service.MentorService, in io.Reader, out io.Writer) error {
	lines := bufio.NewScanner(in)
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !lines.Scan() {
			return "", false
		}
		return strings.TrimSpace(lines.Text()), true
	}

	store := session.NewStore()
	fmt.Fprintln(out, "Welcome to Leembo! Your personalized learning assistant.")
	fmt.Fprintln(out, "Type 'exit' at any time to quit.")

	for {
		topic, ok := ask("\nWhat would you like to learn about? ")
		if !ok || strings.EqualFold(topic, "exit") {
			break
		}
		if topic == "" {
			continue
		}

		pending := mentor.BeginAssessment(ctx, store, topic)
		fmt.Fprintf(out, "\nAssessment for %s\n  Level: %s\n  Learning style: %s\n",
			pending.Topic, pending.Assessment.Level, pending.Assessment.Style)

		assessment := pending.Assessment
		answer, ok := ask("Does this look right? [Y/n] ")
		if !ok {
			break
		}
		if strings.HasPrefix(strings.ToLower(answer), "n") {
			if level, ok := ask(fmt.Sprintf("Level (Beginner/Intermediate/Advanced) [%s]: ", assessment.Level)); ok && level != "" {
				assessment.Level = domain.ParseLevel(level)
			}
			if style, ok := ask(fmt.Sprintf("Style (Visual/Auditory/Reading/Kinesthetic) [%s]: ", assessment.Style)); ok && style != "" {
				assessment.Style = domain.ParseStyle(style)
			}
		}

		fmt.Fprintln(out, "\nPreparing your learning materials...")
		printPackage(out, mentor.ApproveAssessment(ctx, store, pending.Topic, assessment))

		fmt.Fprintln(out, "\nWould you like to:\n1. Learn another topic\n2. Exit")
		choice, ok := ask("Your choice (1/2): ")
		if !ok || choice == "2" {
			break
		}
		mentor.ResetSession(store)
	}

	fmt.Fprintln(out, "\nThank you for learning with Leembo!")
	return nil
}

func printPackage(out io.Writer, pkg domain.LearningPackage) {
	fmt.Fprintf(out, "\n== Assessment ==\nLevel: %s\nLearning style: %s\n", pkg.Assessment.Level, pkg.Assessment.Style)

	fmt.Fprintln(out, "\n== Curated resources ==")
	if len(pkg.Resources) == 0 {
		fmt.Fprintln(out, "No resources found.")
	}
	for _, r := range pkg.Resources {
		fmt.Fprintf(out, "- %s\n  Summary: %s\n  Link: %s\n", r.Title, r.Summary, r.URL)
	}

	fmt.Fprintf(out, "\n== Explanation ==\n%s\n", pkg.Explanation)

	fmt.Fprintln(out, "\n== Quiz ==")
	for i, q := range pkg.Quiz {
		fmt.Fprintf(out, "\nQuestion %d: %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "%d. %s\n", j+1, opt)
		}
	}
}
