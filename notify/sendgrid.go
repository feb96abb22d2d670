package notify

import (
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	templates "github.com/biit/biit-api/templates/html"
)

const alertSubject = "biit-api alert"

type mailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier emails every alert to the on-call address
type SendGridNotifier struct {
	client mailSender
	from   *mail.Email
	to     *mail.Email
}

// NewSendGridNotifier creates a notifier that sends through the SendGrid API
func NewSendGridNotifier(apiKey, from, to string) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("biit-api", from),
		to:     mail.NewEmail("biit on-call", to),
	}
}

// Notify emails the alert. Delivery errors are only logged.
func (s *SendGridNotifier) Notify(message string) {
	htmlContent := templates.RenderAlertEmail(alertSubject, message)
	email := mail.NewSingleEmail(s.from, alertSubject, s.to, message, htmlContent)
	response, err := s.client.Send(email)
	if err != nil {
		zap.S().Errorw("failed to send alert email", "error", err)
		return
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
}
