package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreOrdering(t *testing.T) {
	cases := []struct {
		name string
		a, b Score
		want int
	}{
		{"feasible 3 below feasible 5", Feasible(3), Feasible(5), -1},
		{"feasible 8 above feasible 5", Feasible(8), Feasible(5), 1},
		{"feasible 3 equals feasible 3", Feasible(3), Feasible(3), 0},
		{"feasible 3 above overloaded", Feasible(3), Overloaded(), 1},
		{"overloaded below feasible 0", Overloaded(), Feasible(0), -1},
		{"overloaded equals overloaded", Overloaded(), Overloaded(), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Cmp(tc.b))
			assert.Equal(t, -tc.want, tc.b.Cmp(tc.a))
		})
	}
}

func TestScoreBetter(t *testing.T) {
	assert.True(t, Feasible(0).Better(Overloaded()))
	assert.False(t, Overloaded().Better(Overloaded()))
	assert.False(t, Feasible(3).Better(Feasible(3)))
	assert.True(t, Feasible(4).Better(Feasible(3)))
}

func TestScoreValue(t *testing.T) {
	v, ok := Feasible(12_000_000_000).Value()
	assert.True(t, ok)
	assert.Equal(t, uint64(12_000_000_000), v)

	_, ok = Overloaded().Value()
	assert.False(t, ok)
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "Overloaded", Overloaded().String())
	assert.Equal(t, "Feasible(7)", Feasible(7).String())
}

func TestPopulationBest(t *testing.T) {
	pop := Population{
		{Score: Feasible(3)},
		{Score: Overloaded()},
		{Score: Feasible(9)},
		{Score: Feasible(9)}, // tie resolves to first seen
		{Score: Feasible(4)},
	}
	assert.Equal(t, 2, pop.Best())

	assert.Equal(t, -1, Population{}.Best())
}

func TestPopulationBestAllOverloaded(t *testing.T) {
	pop := Population{{Score: Overloaded()}, {Score: Overloaded()}}
	assert.Equal(t, 0, pop.Best())
}
