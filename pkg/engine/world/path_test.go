package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	// 3x2 snake: (0,0) -> (1,0) -> (2,0) -> (2,1) -> (1,1) -> (0,1)
	grid := NewGrid(3, 2)
	grid.RemoveWallBetween(Pos{0, 0}, Pos{1, 0})
	grid.RemoveWallBetween(Pos{1, 0}, Pos{2, 0})
	grid.RemoveWallBetween(Pos{2, 0}, Pos{2, 1})
	grid.RemoveWallBetween(Pos{2, 1}, Pos{1, 1})
	grid.RemoveWallBetween(Pos{1, 1}, Pos{0, 1})

	tests := []struct {
		name     string
		from, to Pos
		want     []Direction
	}{
		{"same cell", Pos{1, 1}, Pos{1, 1}, []Direction{}},
		{"one step", Pos{0, 0}, Pos{1, 0}, []Direction{Right}},
		{"around the snake", Pos{0, 0}, Pos{0, 1}, []Direction{Right, Right, Down, Left, Left}},
		{"backwards", Pos{1, 1}, Pos{1, 0}, []Direction{Right, Up, Left}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Path(tt.from, tt.to))
		})
	}
}

func TestPath_Unreachable(t *testing.T) {
	grid := NewGrid(2, 1)
	assert.Nil(t, grid.Path(Pos{0, 0}, Pos{1, 0}))
	assert.Nil(t, grid.Path(Pos{0, 0}, Pos{4, 0}))
}
