package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"time"
)

// sendWithSMTP delivers a rendered message through a plain SMTP relay. Used
// when no SendGrid key is configured, typically in development.
func (s *Service) sendWithSMTP(data EmailData, htmlContent, textContent string) error {
	relay, ok := s.config.SMTP[string(s.provider)]
	if !ok {
		return fmt.Errorf("no SMTP relay configured for provider %q", s.provider)
	}

	body := buildMultipartMessage(data, htmlContent, textContent)

	addr := fmt.Sprintf("%s:%d", relay.Host, relay.Port)
	auth := smtp.PlainAuth("", relay.Username, relay.Password, relay.Host)

	if err := smtp.SendMail(addr, auth, data.From, []string{data.To}, body); err != nil {
		return fmt.Errorf("sending via SMTP: %w", err)
	}
	return nil
}

// buildMultipartMessage assembles a multipart/alternative MIME body with
// base64-encoded plaintext and HTML parts.
func buildMultipartMessage(data EmailData, htmlContent, textContent string) []byte {
	boundary := fmt.Sprintf("slipcheck-%d", time.Now().UnixNano())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", data.FromName, data.From)
	fmt.Fprintf(&buf, "To: %s\r\n", data.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", data.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	writePart := func(contentType, content string) {
		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		fmt.Fprintf(&buf, "Content-Type: %s; charset=utf-8\r\n", contentType)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
		buf.WriteString(base64.StdEncoding.EncodeToString([]byte(content)))
		buf.WriteString("\r\n")
	}

	// Plaintext first so clients fall back in order of fidelity.
	writePart("text/plain", textContent)
	writePart("text/html", htmlContent)
	fmt.Fprintf(&buf, "--%s--", boundary)

	return buf.Bytes()
}
