package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizbot/internal/telegram"
)

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Serve the quiz as a Telegram bot",
	Long:  "Serve the quiz as a Telegram bot using long polling. Requires QUIZBOT_TELEGRAM_TOKEN.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.cfg.ValidateTelegram(); err != nil {
			return err
		}

		bot, err := telegram.New(telegram.Settings{
			Token:       d.cfg.Telegram.Token,
			PollTimeout: d.cfg.Telegram.PollTimeout,
		}, d.dispatcher, d.logger)
		if err != nil {
			return err
		}
		return bot.Run(cmd.Context())
	},
}
