package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePoints(t *testing.T) {
	tests := []struct {
		name          string
		eventType     string
		status        Status
		justification string
		want          int
	}{
		{"unjustified absence at Missa", EventMissa, StatusAbsent, "", 5},
		{"justified absence at Missa", EventMissa, StatusAbsent, "doctor note", 0},
		{"presence at Ensaio", EventEnsaio, StatusPresent, "", 0},
		{"unjustified absence at Ensaio", EventEnsaio, StatusAbsent, "", 4},
		{"unjustified absence at Evento", EventEvento, StatusAbsent, "", 10},
		{"unknown event type", "Unknown", StatusAbsent, "", 0},
		{"whitespace-only justification counts as none", EventMissa, StatusAbsent, "   ", 5},
		{"presence ignores justification", EventEvento, StatusPresent, "viagem", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePoints(tt.eventType, tt.status, tt.justification)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPresent.IsValid())
	assert.True(t, StatusAbsent.IsValid())
	assert.False(t, Status("Present").IsValid())
	assert.False(t, Status("").IsValid())
}
