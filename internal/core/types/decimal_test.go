package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("19.99")
	require.NoError(t, err)
	assert.Equal(t, "19.99", m.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "10.56", Round2(MustMoney("10.555")).String())
	assert.Equal(t, "10.55", Round2(MustMoney("10.554")).String())
	assert.Equal(t, "-10.56", Round2(MustMoney("-10.555")).String())
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount string
		want     string
	}{
		{"no discount", "100", "0", "100"},
		{"ten percent", "100", "0.1", "90"},
		{"full discount", "100", "1", "0"},
		{"rounds to cents", "99.99", "0.15", "84.99"},
		{"repeating fraction", "10", "0.333", "6.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscount(MustMoney(tt.price), MustMoney(tt.discount))
			assert.True(t, got.Equal(MustMoney(tt.want)),
				"want %s, got %s", tt.want, got.String())
		})
	}
}
