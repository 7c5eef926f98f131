package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question the way you'd explain it to a 6-year-old",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		log, err := newLogger()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		ctx := context.Background()
		svc := newContentService(ctx, log)

		answer, err := svc.AnswerQuestion(ctx, question)
		if err != nil {
			return err
		}

		fmt.Println(answer.SimpleExplanation)
		fmt.Println()
		for _, p := range answer.DetailedExplanation {
			fmt.Println(p)
			fmt.Println()
		}
		for _, f := range answer.FunFacts {
			fmt.Printf("%s %s\n", f.Emoji, f.Text)
		}
		return nil
	},
}
