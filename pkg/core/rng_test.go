package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sample %d differs for identical seeds", i)
		}
	}
}

func TestBernoulliEdges(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		if r.Bernoulli(0) {
			t.Fatal("Bernoulli(0) must never succeed")
		}
		if !r.Bernoulli(1) {
			t.Fatal("Bernoulli(1) must always succeed")
		}
	}
}

func TestSplitIgnoresParentConsumption(t *testing.T) {
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 17; i++ {
		b.Float64()
	}
	ca, cb := a.Split(5), b.Split(5)
	for i := 0; i < 50; i++ {
		if ca.Float64() != cb.Float64() {
			t.Fatalf("split streams diverged at sample %d", i)
		}
	}

	c1, c2 := a.Split(1), a.Split(2)
	same := 0
	for i := 0; i < 50; i++ {
		if c1.Float64() == c2.Float64() {
			same++
		}
	}
	if same == 50 {
		t.Fatal("different stream ids produced identical sequences")
	}
}

var _ Splitter = (*RNG)(nil)

func TestIntNRange(t *testing.T) {
	r := NewRNG(9)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	seen := make([]bool, 5)
	for i := 0; i < 500; i++ {
		v := r.IntN(5)
		if v < 0 || v >= 5 {
			t.Fatalf("IntN(5) = %d out of range", v)
		}
		seen[v] = true
	}
	for v, ok := range seen {
		if !ok {
			t.Fatalf("IntN(5) never returned %d in 500 draws", v)
		}
	}
}
