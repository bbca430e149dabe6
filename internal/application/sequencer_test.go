package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencerDiscardsOlderResponses(t *testing.T) {
	var seq Sequencer

	first := seq.Begin()
	second := seq.Begin()

	assert.True(t, seq.Accept(second))
	assert.False(t, seq.Accept(first))
}

func TestSequencerAcceptsInOrderResponses(t *testing.T) {
	var seq Sequencer

	first := seq.Begin()
	second := seq.Begin()

	assert.True(t, seq.Accept(first))
	assert.True(t, seq.Accept(second))
}

func TestSequencerInvalidateMakesOutstandingTicketsStale(t *testing.T) {
	var seq Sequencer

	ticket := seq.Begin()
	seq.Invalidate()

	assert.False(t, seq.Accept(ticket))
	assert.True(t, seq.Accept(seq.Begin()))
}
