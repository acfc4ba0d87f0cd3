package email

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid delivers a rendered message through the SendGrid API.
func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail(data.FromName, data.From),
		data.Subject,
		mail.NewEmail("", data.To),
		textContent,
		htmlContent,
	)

	resp, err := s.sendgridClient.Send(msg)
	if err != nil {
		return fmt.Errorf("sending via SendGrid: %w", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("SendGrid rejected message: status %d, body %s", resp.StatusCode, resp.Body)
	}

	return nil
}
