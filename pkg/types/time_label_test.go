package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLabel_Validate(t *testing.T) {
	cases := []struct {
		label string
		valid bool
	}{
		{"09:00 AM", true},
		{"04:00 PM", true},
		{"12:30 PM", true},
		{"9:00 AM", false},
		{"09:00", false},
		{"14:00 PM", false},
		{"09:00 am", false},
		{"", false},
	}

	for _, c := range cases {
		err := TimeLabel(c.label).Validate()
		if c.valid {
			assert.NoError(t, err, c.label)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTimeLabel, c.label)
		}
	}
}

func TestTimeLabel_Scan(t *testing.T) {
	var l TimeLabel
	require.NoError(t, l.Scan([]byte("10:00 AM")))
	assert.Equal(t, TimeLabel("10:00 AM"), l)

	require.NoError(t, l.Scan("11:00 AM"))
	assert.Equal(t, TimeLabel("11:00 AM"), l)

	assert.Error(t, l.Scan(42))
}
