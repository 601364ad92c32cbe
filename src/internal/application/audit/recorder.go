// Package audit provides the application-side recorder that other use
// cases call after their transactions commit.
package audit

import (
	"log/slog"

	"github.com/ministerio-uziel/portal/src/internal/domain/audit"
)

// Recorder appends audit entries without ever failing the caller: the
// audited operation has already committed, so a lost log line is a warning,
// not an error.
type Recorder struct {
	repo audit.Repository
}

func NewRecorder(repo audit.Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Record appends one entry. Failures are logged and swallowed.
func (r *Recorder) Record(user, action, module, details string) {
	entry := audit.NewEntry(user, action, module, details)
	if err := r.repo.Append(nil, entry); err != nil {
		slog.Warn("audit append failed",
			"user", user,
			"action", action,
			"module", module,
			"error", err)
	}
}

// Recent returns the latest entries, newest first.
func (r *Recorder) Recent(limit int) ([]*audit.Entry, error) {
	return r.repo.FindRecent(nil, limit)
}
