// Package notification delivers absence notifications over WhatsApp
// deep links (wa.me). The portal does not run a WhatsApp integration;
// delivery means producing the prefilled-link URL and handing it to the
// configured opener.
package notification

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Opener receives the ready wa.me URL. The default logs it; a UI layer
// plugs in something that opens the link for the admin.
type Opener func(link string) error

// WhatsAppDeliverer builds wa.me deep links for absence messages.
type WhatsAppDeliverer struct {
	open Opener
}

func NewWhatsAppDeliverer(open Opener) *WhatsAppDeliverer {
	if open == nil {
		open = func(link string) error {
			slog.Info("whatsapp notification link ready", "link", link)
			return nil
		}
	}
	return &WhatsAppDeliverer{open: open}
}

// Deliver builds the deep link for contact and passes it to the opener.
// contact is a phone number in international digits; non-digits are
// stripped because wa.me rejects formatting characters.
func (d *WhatsAppDeliverer) Deliver(contact, message string) error {
	number := digitsOnly(contact)
	if number == "" {
		return fmt.Errorf("notification: contact %q has no digits", contact)
	}
	return d.open(BuildLink(number, message))
}

// BuildLink assembles the wa.me URL with the message prefilled.
func BuildLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
