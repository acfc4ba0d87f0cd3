// internal/email/mailer/invitation.go
package mailer

import "github.com/slipcheck/platform/internal/email"

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	CompanyName    string
	InviterName    string
	Role           string
	InvitationCode string
	JoinLink       string
	ExpiresAt      string
}

// SendInvitationEmail sends a company invitation to the given address. The
// invitation record is authoritative; callers treat a failure here as
// non-fatal and relay the code manually.
func SendInvitationEmail(s *email.Service, to string, data InvitationTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "SlipCheck",
		Subject:      "You've been invited to join " + data.CompanyName + " on SlipCheck",
		TemplateName: "invitation",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
