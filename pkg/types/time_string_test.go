package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		for _, s := range []string{"00:00", "09:30", "23:59"} {
			assert.NoError(t, TimeString(s).Validate(), s)
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		for _, s := range []string{"", "24:00", "9:30:00", "abc", "12-30"} {
			err := TimeString(s).Validate()
			require.Error(t, err, s)
			assert.ErrorIs(t, err, ErrInvalidTimeString)
		}
	})
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("08:00"))
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("bad"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}
