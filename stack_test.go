package rpn

import "testing"

func TestStack(t *testing.T) {
	var s stack[int]
	for i := 1; i <= 5; i++ {
		s.push(i)
	}
	if len(s) != 5 || s.top() != 5 {
		t.Fatalf("wrong stack after pushes: %v", s)
	}
	if v := s.pop(); v != 5 {
		t.Errorf("popped %d, want 5", v)
	}
	if s.top() != 4 {
		t.Errorf("top is %d after pop, want 4", s.top())
	}
	full := s[:cap(s)]
	if full[4] != 0 {
		t.Errorf("pop left %d in storage", full[4])
	}
	s.clear()
	if len(s) != 0 {
		t.Errorf("clear left %v", s)
	}
	for i, v := range s[:4] {
		if v != 0 {
			t.Errorf("clear left %d at %d", v, i)
		}
	}
}

func TestReduce(t *testing.T) {
	cases := []struct {
		v    []float64
		s, p float64
	}{
		{nil, 0, 1},
		{[]float64{7}, 7, 7},
		{[]float64{2, 4, 6}, 12, 48},
		{[]float64{2, 3, 4}, 9, 24},
		{[]float64{-1, 0.5}, -0.5, -0.5},
	}
	for _, c := range cases {
		if r := sum(c.v); r != c.s {
			t.Errorf("sum of %v: want %g, got %g", c.v, c.s, r)
		}
		if r := product(c.v); r != c.p {
			t.Errorf("product of %v: want %g, got %g", c.v, c.p, r)
		}
	}
	if r := sum([]float32{1, 2}); r != 3 {
		t.Errorf("float32 sum: want 3, got %g", r)
	}
}
