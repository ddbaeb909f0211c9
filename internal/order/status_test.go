package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	for _, s := range []Status{StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered} {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	nonTerminal := []Status{StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered}

	t.Run("TerminalStatesAreFrozen", func(t *testing.T) {
		all := append(nonTerminal, StatusCompleted, StatusCancelled)
		for _, target := range all {
			assert.False(t, StatusCompleted.CanTransitionTo(target))
			assert.False(t, StatusCancelled.CanTransitionTo(target))
		}
	})

	t.Run("CancellableFromAnyNonTerminal", func(t *testing.T) {
		for _, s := range nonTerminal {
			assert.True(t, s.CanTransitionTo(StatusCancelled), string(s))
		}
	})

	t.Run("NonTerminalMovesFreely", func(t *testing.T) {
		assert.True(t, StatusPending.CanTransitionTo(StatusShipped))
		assert.True(t, StatusShipped.CanTransitionTo(StatusPending))
		assert.True(t, StatusDelivered.CanTransitionTo(StatusCompleted))
	})

	t.Run("NoSelfTransition", func(t *testing.T) {
		for _, s := range nonTerminal {
			assert.False(t, s.CanTransitionTo(s), string(s))
		}
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		assert.False(t, StatusPending.CanTransitionTo(Status("REFUNDED")))
		assert.False(t, Status("bogus").CanTransitionTo(StatusPaid))
	})
}
