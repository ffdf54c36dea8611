package notifier

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/hotel-admin/internal/config"
	log "github.com/sirupsen/logrus"
)

// messageSender is the part of *discordgo.Session the notifier needs.
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier mirrors toasts to a Discord channel.
type DiscordNotifier struct {
	session   messageSender
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if cfg.DiscordNotificationsChannelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &DiscordNotifier{session: session, channelID: cfg.DiscordNotificationsChannelID}, nil
}

var discordIcons = map[Level]string{
	LevelSuccess: "✅",
	LevelError:   "❌",
	LevelInfo:    "🏨",
}

func (n *DiscordNotifier) Notify(_ context.Context, toast Toast) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}

	message := fmt.Sprintf("%s **%s**", discordIcons[toast.Level], toast.Title)
	if toast.Text != "" {
		message += "\n" + toast.Text
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
