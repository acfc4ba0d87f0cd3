package platform

import "embed"

// EmailFS holds the compiled-in email templates.
//
//go:embed templates/emails
var EmailFS embed.FS
