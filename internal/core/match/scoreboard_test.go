package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboardAwardsActivePlayerOnly(t *testing.T) {
	board := NewScoreboard()
	require.NoError(t, board.SelectPlayer(2))
	require.NoError(t, board.AwardPoints(7))

	state := board.State()
	assert.Equal(t, [2]int{0, 7}, state.Points)
	assert.Equal(t, 2, state.Active)
}

func TestScoreboardResetKeepsNamesAndActivePlayer(t *testing.T) {
	board := NewScoreboard()
	require.NoError(t, board.RenamePlayer(1, "Ronnie"))
	require.NoError(t, board.RenamePlayer(2, "Judd"))
	require.NoError(t, board.AwardPoints(4))
	require.NoError(t, board.SelectPlayer(2))
	require.NoError(t, board.AwardPoints(1))

	board.ResetScores()

	state := board.State()
	assert.Equal(t, [2]int{0, 0}, state.Points)
	assert.Equal(t, [2]string{"Ronnie", "Judd"}, state.Names)
	assert.Equal(t, 2, state.Active)
}

func TestScoreboardRejectsInvalidInput(t *testing.T) {
	board := NewScoreboard()
	assert.ErrorIs(t, board.SelectPlayer(3), ErrInvalidPlayer)
	assert.ErrorIs(t, board.RenamePlayer(0, "x"), ErrInvalidPlayer)
	assert.ErrorIs(t, board.AwardPoints(0), ErrInvalidPoints)
	assert.ErrorIs(t, board.AwardPoints(-2), ErrInvalidPoints)
	assert.Equal(t, 1, board.State().Active)
}

func TestScoreboardAcceptsAnyPositiveAward(t *testing.T) {
	board := NewScoreboard()
	require.NoError(t, board.AwardPoints(15))
	require.NoError(t, board.RenamePlayer(1, ""))
	assert.Equal(t, 15, board.State().Points[0])
	assert.Equal(t, "", board.State().Names[0])
}
