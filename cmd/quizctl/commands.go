package main

import (
	"fmt"

	"quiz-relay/internal/adapter/quizgen"
	"quiz-relay/internal/config"
	"quiz-relay/internal/logger"
	"quiz-relay/internal/server"
	"quiz-relay/internal/service"

	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <keyword>",
		Short: "Print the prompt that would be sent for a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := quizgen.NewQuizPromptBuilder().Build(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), prompt)
			return err
		},
	}
}

// newGenerateCmd uses a service factory so tests can swap the upstream.
func newGenerateCmd() *cobra.Command {
	return newGenerateCmdWith(func() (service.QuizService, error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := logger.Initialize(cfg.Logger); err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		return server.NewQuizService(cfg)
	})
}

func newGenerateCmdWith(newService func() (service.QuizService, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <keyword>",
		Short: "Call the upstream API once and print its raw response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			body, err := svc.GenerateQuiz(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return err
		},
	}
}
