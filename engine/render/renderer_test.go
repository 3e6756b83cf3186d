package render

import "testing"

func TestNumberAlpha(t *testing.T) {
	cases := []struct {
		age, life, want float64
	}{
		{0, 0.8, 1},
		{0.4, 0.8, 0.5},
		{0.8, 0.8, 0},
		{2, 0.8, 0},
		{0.1, 0, 0},
	}
	for _, c := range cases {
		if got := NumberAlpha(c.age, c.life); got != c.want {
			t.Errorf("NumberAlpha(%v, %v) = %v, want %v", c.age, c.life, got, c.want)
		}
	}
}

func TestKindColor(t *testing.T) {
	if KindColor("beam") == KindColor("prism") {
		t.Error("beam and prism share a color")
	}
	if c := KindColor("nothing"); c.A != 255 || c.R != 255 {
		t.Errorf("unknown kind color %+v", c)
	}
}
