package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"tripmates-api/config"
	"tripmates-api/logger"
	"tripmates-api/models"
)

// EmailService sends transactional mail. It implements app.MatchNotifier;
// delivery is best-effort and failures are only logged.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// NotifyMatch tells a user they have a new travel match. User records hold
// no email address yet, so the message goes to the username's mailbox on the
// configured domain.
func (es *EmailService) NotifyMatch(user, matchedWith models.User) {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", fmt.Sprintf("%s@%s", user.Username, "users.tripmates.app"))
	m.SetHeader("Subject", "TripMates - You have a new match!")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Match</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>It's a match, %s!</h2>
    <p>You and <strong>%s</strong> liked each other. A chat has been opened
    for you two - say hi and start planning your next trip together.</p>
    <p style="color: #888; font-size: 12px;">You are receiving this because
    you rated travelers on TripMates.</p>
</body>
</html>`, user.Username, matchedWith.Username)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		logger.Warn("Failed to send match notification email",
			"user", user.Username, "error", err)
		return
	}
	logger.Info("Match notification email sent", "user", user.Username)
}
