package attendance

import (
	"math"
	"sort"

	"github.com/ministerio-uziel/portal/src/internal/domain/attendance"
	"github.com/ministerio-uziel/portal/src/internal/domain/member"
)

// Queries are the read side of the ledger: snapshots for the roster,
// history and dashboard views. No transactions, no side effects.
type Queries struct {
	memberRepo member.Repository
	recordRepo attendance.Repository
}

func NewQueries(memberRepo member.Repository, recordRepo attendance.Repository) *Queries {
	return &Queries{memberRepo: memberRepo, recordRepo: recordRepo}
}

// ListMembers returns the roster sorted by name.
func (q *Queries) ListMembers() ([]*member.Member, error) {
	return q.memberRepo.FindAll(nil)
}

// MemberByName resolves a member through the display-name natural key.
func (q *Queries) MemberByName(name string) (*member.Member, error) {
	return q.memberRepo.FindByName(nil, name)
}

// ListRecords returns the full history, newest event first.
func (q *Queries) ListRecords() ([]*attendance.Record, error) {
	return q.recordRepo.FindAll(nil)
}

// MemberRecords returns one member's history, newest event first.
func (q *Queries) MemberRecords(id member.MemberID) ([]*attendance.Record, error) {
	return q.recordRepo.FindByMemberID(nil, id)
}

// DashboardStats summarizes the ledger for the dashboard view.
type DashboardStats struct {
	MemberCount  int
	RecordCount  int
	PresentCount int
	AbsentCount  int

	// JustifiedCount is the subset of absences carrying a justification.
	JustifiedCount int

	// PresenceRate is PresentCount over all records as a rounded
	// percentage, zero when there are no records.
	PresenceRate int

	// Ranking is the roster ordered by point total, highest first; ties
	// fall back to name order.
	Ranking []*member.Member
}

// Dashboard computes the stats from fresh snapshots.
func (q *Queries) Dashboard() (*DashboardStats, error) {
	members, err := q.memberRepo.FindAll(nil)
	if err != nil {
		return nil, err
	}
	records, err := q.recordRepo.FindAll(nil)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		MemberCount: len(members),
		RecordCount: len(records),
	}
	for _, rec := range records {
		switch rec.Status() {
		case attendance.StatusPresent:
			stats.PresentCount++
		case attendance.StatusAbsent:
			stats.AbsentCount++
			if rec.IsJustified() {
				stats.JustifiedCount++
			}
		}
	}
	if stats.RecordCount > 0 {
		stats.PresenceRate = int(math.Round(float64(stats.PresentCount) / float64(stats.RecordCount) * 100))
	}

	ranking := make([]*member.Member, len(members))
	copy(ranking, members)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalPoints() > ranking[j].TotalPoints()
	})
	stats.Ranking = ranking

	return stats, nil
}
