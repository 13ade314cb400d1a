package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/service"
)

func TestOutcomeError(t *testing.T) {
	require.NoError(t, outcomeError(service.RunResult{Outcome: service.OutcomeSent}))
	require.NoError(t, outcomeError(service.RunResult{Outcome: service.OutcomeSkipped}))

	err := outcomeError(service.RunResult{RunID: "r1", Outcome: service.OutcomeFailed})
	require.ErrorIs(t, err, errRunFailed)
	require.Contains(t, err.Error(), "r1")

	require.ErrorIs(t, outcomeError(service.RunResult{Outcome: service.OutcomeSendFailed}), errRunSendFailed)
}
