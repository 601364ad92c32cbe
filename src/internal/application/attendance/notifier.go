package attendance

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/identity"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
)

// Deliverer sends one message to one WhatsApp contact. Implemented by the
// notification infrastructure.
type Deliverer interface {
	Deliver(contact, message string) error
}

// NotifierSettings gates the absence trigger.
type NotifierSettings struct {
	// Enabled mirrors the portal's auto-notify toggle.
	Enabled bool

	// SenderContact is the admin number messages go out from. Empty
	// disables the trigger.
	SenderContact string
}

// AbsenceNotifier fires a WhatsApp message when an absence is registered.
// It runs after the ledger transaction commits and never propagates
// failures back: a notification is a courtesy, not part of the record.
type AbsenceNotifier struct {
	settings  NotifierSettings
	deliverer Deliverer
}

func NewAbsenceNotifier(settings NotifierSettings, deliverer Deliverer) *AbsenceNotifier {
	return &AbsenceNotifier{settings: settings, deliverer: deliverer}
}

// MaybeNotifyAbsence sends the absence message when every condition holds:
// the toggle is on, the actor is an admin, a sender contact is configured
// and the member has a WhatsApp contact. Every skip path logs its reason.
func (n *AbsenceNotifier) MaybeNotifyAbsence(actor identity.Actor, m *member.Member, event attendance.ActiveEvent) {
	if !n.settings.Enabled {
		slog.Debug("absence notification skipped", "reason", "auto-notify disabled")
		return
	}
	if !actor.IsAdmin() {
		slog.Debug("absence notification skipped", "reason", "actor is not admin", "actor", actor.Name)
		return
	}
	if n.settings.SenderContact == "" {
		slog.Debug("absence notification skipped", "reason", "no sender contact configured")
		return
	}
	if m.Contact() == "" {
		slog.Debug("absence notification skipped", "reason", "member has no contact", "member", m.Name())
		return
	}

	message := absenceMessage(m.Name(), event)
	if err := n.deliverer.Deliver(m.Contact(), message); err != nil {
		slog.Warn("absence notification failed", "member", m.Name(), "error", err)
		return
	}
	slog.Info("absence notification sent", "member", m.Name(), "event", event.EventType, "date", event.Date)
}

// absenceMessage composes the pt-BR message the portal sends, greeting the
// member by first name.
func absenceMessage(memberName string, event attendance.ActiveEvent) string {
	firstName := memberName
	if i := strings.IndexByte(memberName, ' '); i > 0 {
		firstName = memberName[:i]
	}
	return fmt.Sprintf(
		"Olá %s! Sentimos sua falta no evento %s do dia %s. Esperamos você no próximo encontro!",
		firstName, event.EventType, event.Date,
	)
}
