package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/FuryACE007/team-ui/internal/domain/events"
	"github.com/FuryACE007/team-ui/internal/page"
	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const (
	sessionPrefix = "tg:"
	sourceChat    = "telegram"
)

type queryPages interface {
	Submit(sessionID string, source string, input string) uint64
}

// Bot is the chat front-end of the query page. Every private chat is its own page session.
type Bot struct {
	tg    *botApi.BotAPI
	api   apiInterface
	bus   EventBus.Bus
	pages queryPages
}

func NewBot(token string, bus EventBus.Bus, pages queryPages) (*Bot, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	createdBot, err := newBot(api, bus, pages)
	if err != nil {
		return nil, err
	}
	createdBot.tg = api
	return createdBot, nil
}

func newBot(api apiInterface, bus EventBus.Bus, pages queryPages) (*Bot, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if pages == nil {
		return nil, errors.New("query pages are nil")
	}

	createdBot := &Bot{api: api, bus: bus, pages: pages}

	err := bus.Subscribe(events.QuerySettledTopic, createdBot.onQuerySettled)
	if err != nil {
		return nil, err
	}
	return createdBot, nil
}

// Run receives updates until Stop is called.
func (b *Bot) Run() {

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.tg.GetUpdatesChan(updateConfig)

	for update := range updates {

		if update.Message == nil {
			continue
		}

		if update.Message.Chat.IsGroup() || update.Message.Chat.IsSuperGroup() {
			continue
		}

		go b.handleMessage(update.Message)
	}
}

func (b *Bot) Stop() {
	if b.tg != nil {
		b.tg.StopReceivingUpdates()
	}
	if err := b.bus.Unsubscribe(events.QuerySettledTopic, b.onQuerySettled); err != nil {
		log.Warnf("Error unsubscribing bot from %s: %v", events.QuerySettledTopic, err)
	}
}

func (b *Bot) handleMessage(message *botApi.Message) {

	if cmd := message.Command(); cmd != "" {
		b.handleCommand(message.Chat, cmd)
		return
	}

	if strings.TrimSpace(message.Text) == "" {
		return
	}

	_, _ = sendWithLogError(b.api, botApi.NewMessage(message.Chat.ID, loadingText))
	b.pages.Submit(sessionOf(message.Chat.ID), sourceChat, message.Text)
}

func (b *Bot) handleCommand(chat *botApi.Chat, command string) {

	var response botApi.Chattable

	switch command {
	case startCommandName, helpCommandName:
		response = botApi.NewMessage(chat.ID, greetingText)
	default:
		response = botApi.NewMessage(chat.ID, unknownCommandText)
	}

	_, _ = sendWithLogError(b.api, response)
}

// onQuerySettled sends the current candidate list of a chat session. A failed query
// leaves the list unchanged, so the previous one is sent again.
func (b *Bot) onQuerySettled(event events.QuerySettled) {

	chatID, ok := chatOf(event.SessionID)
	if !ok {
		return
	}

	if len(event.Candidates) == 0 {
		_, _ = sendWithLogError(b.api, botApi.NewMessage(chatID, noCandidatesText))
		return
	}

	for _, card := range page.NewCards(event.Candidates) {
		_, _ = sendWithLogError(b.api, botApi.NewMessage(chatID, card.Text()))
	}
}

func sessionOf(chatID int64) string {
	return fmt.Sprintf("%s%d", sessionPrefix, chatID)
}

func chatOf(sessionID string) (int64, bool) {
	raw, found := strings.CutPrefix(sessionID, sessionPrefix)
	if !found {
		return 0, false
	}
	chatID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return chatID, true
}
