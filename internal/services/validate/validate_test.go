package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerNameTrims(t *testing.T) {
	name, err := PlayerName("  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)
}

func TestPlayerNameRejectsEmpty(t *testing.T) {
	_, err := PlayerName("   ")
	require.Error(t, err)

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "player_name", ve.Field)
}

func TestPlayerNameRejectsTooLong(t *testing.T) {
	_, err := PlayerName(strings.Repeat("a", MaxNameLength+1))
	assert.Error(t, err)

	_, err = PlayerName(strings.Repeat("a", MaxNameLength))
	assert.NoError(t, err)
}

func TestSessionCodeLength(t *testing.T) {
	code, err := SessionCode(" ABC234 ")
	require.NoError(t, err)
	assert.Equal(t, "ABC234", code)

	_, err = SessionCode("ABC")
	assert.Error(t, err)

	_, err = SessionCode("ABC2345")
	assert.Error(t, err)
}

func TestQuestionBounds(t *testing.T) {
	q, err := Question("  Capital of France? ")
	require.NoError(t, err)
	assert.Equal(t, "Capital of France?", q)

	_, err = Question("")
	assert.Error(t, err)

	_, err = Question(strings.Repeat("q", MaxQuestionLength+1))
	assert.Error(t, err)
}

func TestAnswerBounds(t *testing.T) {
	_, err := Answer(strings.Repeat("a", MaxAnswerLength))
	assert.NoError(t, err)

	_, err = Answer(strings.Repeat("a", MaxAnswerLength+1))
	assert.Error(t, err)
}

func TestGuessBounds(t *testing.T) {
	g, err := Guess(" paris ")
	require.NoError(t, err)
	assert.Equal(t, "paris", g)

	_, err = Guess("  ")
	assert.Error(t, err)
}
