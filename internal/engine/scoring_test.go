package engine

import "testing"

func TestScoreBonus(t *testing.T) {
	cases := []struct {
		name       string
		lines      int
		spin       bool
		perfect    bool
		combo      int
		backToBack int
		want       int
	}{
		{"no lines", 0, false, false, 0, 0, 0},
		{"single", 1, false, false, 1, 0, 10},
		{"double", 2, false, false, 1, 0, 40},
		{"triple", 3, false, false, 1, 0, 90},
		{"quadruple", 4, false, false, 1, 1, 160},
		{"spin single", 1, true, false, 1, 1, 40},
		{"perfect single", 1, false, true, 1, 1, 160},
		{"combo single", 1, false, false, 3, 0, 30},
		{"back-to-back quadruple", 4, false, false, 1, 2, 640},
		{"spin perfect quadruple", 4, true, true, 2, 3, 10 * 16 * 4 * 16 * 2 * 9},
	}
	for _, c := range cases {
		if got := ScoreBonus(c.lines, c.spin, c.perfect, c.combo, c.backToBack); got != c.want {
			t.Errorf("%s: ScoreBonus = %d, want %d", c.name, got, c.want)
		}
	}
}
