package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appattendance "github.com/ministerio-uziel/portal/src/internal/application/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
)

func enabledSettings() appattendance.NotifierSettings {
	return appattendance.NotifierSettings{Enabled: true, SenderContact: "5544988880000"}
}

func TestNotifier_SendsOnAbsence(t *testing.T) {
	s := newStack(t, enabledSettings())
	m := s.addMember(t, "Ana Bonin", "5544999990000")
	s.configureEvent(t, attendance.EventMissa, "2026-03-01")

	s.registerStatus(t, m.MemberID(), attendance.StatusAbsent, "")

	require.Len(t, s.deliverer.deliveries, 1)
	assert.Equal(t, "5544999990000", s.deliverer.deliveries[0].contact)
	assert.Contains(t, s.deliverer.deliveries[0].message, "ANA")
	assert.Contains(t, s.deliverer.deliveries[0].message, attendance.EventMissa)
	assert.Contains(t, s.deliverer.deliveries[0].message, "2026-03-01")
}

func TestNotifier_GreetsByFirstName(t *testing.T) {
	s := newStack(t, enabledSettings())
	m := s.addMember(t, "Ana Bonin", "5544999990000")
	s.configureEvent(t, attendance.EventMissa, "2026-03-01")

	s.registerStatus(t, m.MemberID(), attendance.StatusAbsent, "")

	require.Len(t, s.deliverer.deliveries, 1)
	assert.Contains(t, s.deliverer.deliveries[0].message, "Olá ANA!")
	assert.NotContains(t, s.deliverer.deliveries[0].message, "ANA BONIN")
}

func TestNotifier_SilentOnPresence(t *testing.T) {
	s := newStack(t, enabledSettings())
	m := s.addMember(t, "Ana Bonin", "5544999990000")
	s.configureEvent(t, attendance.EventMissa, "2026-03-01")

	s.registerStatus(t, m.MemberID(), attendance.StatusPresent, "")
	assert.Empty(t, s.deliverer.deliveries)
}

func TestNotifier_DisabledToggle(t *testing.T) {
	s := newStack(t, appattendance.NotifierSettings{Enabled: false, SenderContact: "5544988880000"})
	m := s.addMember(t, "Ana Bonin", "5544999990000")
	s.configureEvent(t, attendance.EventMissa, "2026-03-01")

	s.registerStatus(t, m.MemberID(), attendance.StatusAbsent, "")
	assert.Empty(t, s.deliverer.deliveries)
}

func TestNotifier_RequiresAdminActor(t *testing.T) {
	s := newStack(t, enabledSettings())
	m := s.addMember(t, "Ana Bonin", "5544999990000")
	s.configureEvent(t, attendance.EventMissa, "2026-03-01")

	_, err := s.register.Execute(appattendance.RegisterAttendanceCommand{
		Actor:    regular,
		MemberID: m.MemberID().String(),
		Status:   string(attendance.StatusAbsent),
	})
	require.NoError(t, err)
	assert.Empty(t, s.deliverer.deliveries)
}

func TestNotifier_SkipsWithoutSenderContact(t *testing.T) {
	s := newStack(t, appattendance.NotifierSettings{Enabled: true})
	m := s.addMember(t, "Ana Bonin", "5544999990000")
	s.configureEvent(t, attendance.EventMissa, "2026-03-01")

	s.registerStatus(t, m.MemberID(), attendance.StatusAbsent, "")
	assert.Empty(t, s.deliverer.deliveries)
}

func TestNotifier_SkipsMemberWithoutContact(t *testing.T) {
	s := newStack(t, enabledSettings())
	m := s.addMember(t, "Ana Bonin", "")
	s.configureEvent(t, attendance.EventMissa, "2026-03-01")

	s.registerStatus(t, m.MemberID(), attendance.StatusAbsent, "")
	assert.Empty(t, s.deliverer.deliveries)
}
