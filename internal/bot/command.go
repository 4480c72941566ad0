package bot

import (
	"github.com/FuryACE007/team-ui/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const (
	startCommandName = "start"
	helpCommandName  = "help"
)

const (
	greetingText = "Hi! Describe who you are looking for, e.g. \"someone with React, Node knowledge, " +
		"budget is 5000, part-time\"."
	loadingText        = "Loading..."
	noCandidatesText   = "No candidates."
	unknownCommandText = "Unknown command."
)

type apiInterface interface {
	Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error)
}

func sendWithLogError(api apiInterface, chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, err := api.Send(chattable)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("error occured while sending message: %v", err)
	}
	return msg, err
}
