package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardRejectsSecondMutationOnSameRecord(t *testing.T) {
	g := newGuard("product")

	release, err := g.begin("1")
	require.NoError(t, err)

	_, err = g.begin("1")
	assert.ErrorIs(t, err, ErrMutationPending)

	// Different record is unaffected.
	release2, err := g.begin("2")
	require.NoError(t, err)
	release2()

	release()
	_, err = g.begin("1")
	assert.NoError(t, err, "record is claimable again once released")
}
