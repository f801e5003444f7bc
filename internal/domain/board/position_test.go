package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPosition(t *testing.T) {
	tests := []struct {
		name   string
		maxPos int64
		want   int64
	}{
		{"empty collection", 0, 1000},
		{"single card", 1000, 2000},
		{"midpoint survivor", 1500, 2500},
		{"large board", 42000, 43000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextPosition(tt.maxPos))
		})
	}
}

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name    string
		before  int64
		after   int64
		wantPos int64
		wantOK  bool
	}{
		{"wide gap", 1000, 2000, 1500, true},
		{"head insert", 0, 1000, 500, true},
		{"minimal gap", 1000, 1002, 1001, true},
		{"gap exhausted", 1000, 1001, 0, false},
		{"equal neighbors", 1000, 1000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := Midpoint(tt.before, tt.after)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPos, pos)
				assert.Greater(t, pos, tt.before)
				assert.Less(t, pos, tt.after)
			}
		})
	}
}

func TestRenormalize(t *testing.T) {
	t.Run("restores gapped positions", func(t *testing.T) {
		assert.Equal(t, []int64{1000, 2000, 3000}, Renormalize(3))
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Empty(t, Renormalize(0))
	})

	t.Run("every gap fits a midpoint again", func(t *testing.T) {
		positions := Renormalize(10)
		for i := 1; i < len(positions); i++ {
			_, ok := Midpoint(positions[i-1], positions[i])
			assert.True(t, ok)
		}
	})
}
