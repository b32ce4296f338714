package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestStageLabel(t *testing.T) {
	tests := []struct {
		name  string
		event usecase.ProgressEvent
		want  string
	}{
		{"stage only", usecase.ProgressEvent{Stage: "Reading"}, "Reading"},
		{"with message", usecase.ProgressEvent{Stage: "Submitting", Message: "createRaffle"}, "Submitting: createRaffle"},
		{"with counts", usecase.ProgressEvent{Stage: "Reading", Current: 2, Total: 5, Message: "raffle 2"}, "Reading [2/5]: raffle 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stageLabel(tt.event))
		})
	}
}

func TestSpinnerSink_PlainStages(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	sink := newSpinnerSink(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageValidating, Message: "checking participants"})
	sink.Info("predicted raffle number 3")
	sink.Error("journal unavailable")
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted})

	out := buf.String()
	assert.Contains(t, out, "Validating: checking participants")
	assert.Contains(t, out, "predicted raffle number 3")
	assert.Contains(t, out, "journal unavailable")
}
