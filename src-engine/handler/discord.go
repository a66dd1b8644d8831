// Package handler is the Discord front end: a thin shell that forwards
// prefixed messages to the command engine and replies with the result text.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"calcmd/src-engine/command"
	"calcmd/src-engine/manager"
	"calcmd/src-engine/metric"
	"calcmd/src-engine/utils"

	"github.com/bwmarrin/discordgo"
)

// Discord opens a session and wires the message handler. The caller owns the
// returned session and closes it on shutdown.
func Discord(as *utils.AppState, mgr *manager.CalendarManager) (*discordgo.Session, error) {
	token := as.Config.GetDiscordAppToken()
	if token == "" {
		return nil, fmt.Errorf("Discord: DISCORD_APP_TOKEN is not set")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("Discord: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	prefix := as.Config.GetCommandPrefix()
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		if !strings.HasPrefix(m.Content, prefix) {
			return
		}
		line := utils.CleanupString(strings.TrimPrefix(m.Content, prefix))
		if line == "" {
			return
		}

		reply := handleLine(as, mgr, line)
		if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
			slog.Warn("can't respond", "handler", "discord", "error", err)
		}
	})

	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("Discord: can't open session: %w", err)
	}
	return session, nil
}

func handleLine(as *utils.AppState, mgr *manager.CalendarManager, line string) string {
	// {natural date} spans become grammar literals before parsing
	line, err := utils.ResolveNaturalDates(as.When, line, time.Now().In(as.Config.GetLocation()))
	if err != nil {
		return fmt.Sprintf("Can't read that date\n```%s```", err.Error())
	}

	metric.CountCommand()
	ctx := context.Background()
	result, err := command.Run(ctx, mgr, line)
	if err != nil {
		metric.CountCommandError()
		return fmt.Sprintf("Can't run that command\n```%s```", err.Error())
	}

	// header the reply with the active calendar, title-cased for display;
	// stored names keep their casing
	if calendarModel, err := mgr.Current(ctx); err == nil {
		return fmt.Sprintf("**%s**\n%s", utils.TitleCase(calendarModel.Name), result)
	}
	return result
}
