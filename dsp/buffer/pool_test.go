package buffer

import "testing"

func TestPoolGetZeroed(t *testing.T) {
	p := NewPool()

	// Write through one cycle, then make sure reuse hands back clean
	// scratch rather than the previous row's samples.
	b := p.Get(4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	b.Samples()[0] = 42
	b.Samples()[3] = -7
	p.Put(b)

	again := p.Get(4)
	for i, v := range again.Samples() {
		if v != 0 {
			t.Fatalf("recycled Samples()[%d] = %v, want 0", i, v)
		}
	}
	p.Put(again)
}

func TestPoolPutNil(_ *testing.T) {
	NewPool().Put(nil)
}
