// internal/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sendgrid/sendgrid-go"
	"github.com/slipcheck/platform"
	"github.com/slipcheck/platform/internal/config"
)

// Provider identifies a delivery mechanism.
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"

	templateRoot = "templates/emails"
)

// EmailData describes one outgoing message. TemplateName selects an embedded
// template pair; TemplateData is handed to both the HTML and plaintext
// variants.
type EmailData struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

// Template is a rendered-together pair: every message goes out with both an
// HTML and a plaintext body.
type Template struct {
	HTML      *template.Template
	Plaintext *template.Template
}

// Service renders embedded templates and delivers them through the configured
// provider.
type Service struct {
	config         *config.Config
	provider       Provider
	sendgridClient *sendgrid.Client
	Templates      map[string]*Template
}

func NewEmailService(cfg *config.Config, provider Provider) (*Service, error) {
	s := &Service{
		config:    cfg,
		provider:  provider,
		Templates: make(map[string]*Template),
	}

	if provider == ProviderSendgrid {
		s.sendgridClient = sendgrid.NewSendClient(cfg.Sendgrid.APIKey)
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}

	return s, nil
}

// loadTemplates parses every template pair compiled into the binary. A group
// directory must hold exactly html.tmpl and plaintext.tmpl; anything else is
// a packaging mistake worth failing startup over.
func (s *Service) loadTemplates() error {
	groups, err := platform.EmailFS.ReadDir(templateRoot)
	if err != nil {
		return fmt.Errorf("reading template root: %w", err)
	}
	if len(groups) == 0 {
		return fmt.Errorf("no email templates embedded")
	}

	for _, group := range groups {
		if !group.IsDir() {
			continue
		}

		dir := templateRoot + "/" + group.Name()

		htmlTmpl, err := template.ParseFS(platform.EmailFS, dir+"/html.tmpl")
		if err != nil {
			return fmt.Errorf("template group %s: %w", group.Name(), err)
		}
		textTmpl, err := template.ParseFS(platform.EmailFS, dir+"/plaintext.tmpl")
		if err != nil {
			return fmt.Errorf("template group %s: %w", group.Name(), err)
		}

		s.Templates[group.Name()] = &Template{HTML: htmlTmpl, Plaintext: textTmpl}
	}

	return nil
}

// SendEmail renders the named template pair and delivers the message.
func (s *Service) SendEmail(data EmailData) error {
	htmlContent, textContent, err := s.render(data.TemplateName, data.TemplateData)
	if err != nil {
		return err
	}

	switch s.provider {
	case ProviderSendgrid:
		if data.From == "" {
			data.From = s.config.Sendgrid.From
		}
		return s.sendWithSendgrid(data, htmlContent, textContent)
	case ProviderSMTP:
		if data.From == "" {
			data.From = s.config.SMTP[string(s.provider)].From
		}
		if data.From == "" {
			return fmt.Errorf("missing sender address")
		}
		return s.sendWithSMTP(data, htmlContent, textContent)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.provider)
	}
}

func (s *Service) render(name string, data interface{}) (string, string, error) {
	tmpl, ok := s.Templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := tmpl.HTML.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("rendering %s html: %w", name, err)
	}
	if err := tmpl.Plaintext.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("rendering %s plaintext: %w", name, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}
