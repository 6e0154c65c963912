package clip

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheckSimple(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		assert.NoError(t, CheckSimple([]Point{
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
		}))
	})

	t.Run("l shape", func(t *testing.T) {
		assert.NoError(t, CheckSimple(lShape()))
	})

	t.Run("bowtie", func(t *testing.T) {
		err := CheckSimple([]Point{
			{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2},
		})
		assert.True(t, errors.Is(err, ErrGeometry))
	})

	t.Run("rejects invalid input first", func(t *testing.T) {
		err := CheckSimple([]Point{{X: 0, Y: 0}})
		assert.True(t, errors.Is(err, ErrInput))
	})
}
