package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellViewString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".", ViewHidden.String())
	assert.Equal(t, "F", ViewFlagged.String())
	assert.Equal(t, "*", ViewMine.String())
	assert.Equal(t, " ", CellView(0).String())
	for n := CellView(1); n <= 8; n++ {
		assert.Equal(t, string(rune('0'+n)), n.String())
	}
	assert.Equal(t, "?", CellView(-5).String())
	assert.Equal(t, "?", CellView(12).String())
}

func TestCellViewRevealed(t *testing.T) {
	t.Parallel()

	assert.False(t, ViewHidden.Revealed())
	assert.False(t, ViewFlagged.Revealed())
	assert.True(t, CellView(0).Revealed())
	assert.True(t, CellView(8).Revealed())
	assert.True(t, ViewMine.Revealed())
}

func TestCellViewOutOfBounds(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)
	assert.Equal(t, ViewHidden, s.CellView(-1, 0))
	assert.Equal(t, ViewHidden, s.CellView(0, -1))
	assert.Equal(t, ViewHidden, s.CellView(5, 0))
	assert.Equal(t, ViewHidden, s.CellView(0, 5))
}

func TestGridViewToString(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)
	require.Equal(t, RevealContinue, s.Reveal(1, 3).Outcome)
	require.Equal(t, RevealLoss, s.Reveal(0, 4).Outcome)

	want := ". . . . *\n" +
		". . . 2 .\n" +
		". . . . *\n" +
		". . . . .\n" +
		". . . . .\n"
	assert.Equal(t, want, s.View().ToString(s.Params().Width))
}

func TestViewHidesMinesWhileInProgress(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)
	require.Equal(t, RevealContinue, s.Reveal(1, 3).Outcome)
	require.Equal(t, FlagPlaced, s.ToggleFlag(2, 4).Outcome)

	for i, v := range s.View() {
		if v == ViewMine {
			t.Errorf("cell %d leaks a mine on a running board", i)
		}
	}
}
