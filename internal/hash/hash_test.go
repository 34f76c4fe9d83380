package hash

import (
	"testing"

	"github.com/alecthomas/unsafeslice"
	"github.com/twmb/murmur3"
)

const seed = 0x5eed

var xxx = []int{4, 0, 3, 1, 2, 7, 6, 5}

func TestNew(t *testing.T) {
	for _, ht := range []int{Murmur3, Metro} {
		h, err := New(ht, seed)
		if err != nil {
			t.Fatalf("hasher %d: %v", ht, err)
		}
		if h.Sum64(xxx) != h.Sum64([]int{4, 0, 3, 1, 2, 7, 6, 5}) {
			t.Errorf("hasher %d is not deterministic", ht)
		}
		other, _ := New(ht, seed+1)
		if h.Sum64(xxx) == other.Sum64(xxx) {
			t.Errorf("hasher %d ignores its seed", ht)
		}
	}
	if _, err := New(-1, seed); err != ErrUnknownHash {
		t.Errorf("expected ErrUnknownHash and got %v", err)
	}
}

func TestOrderMatters(t *testing.T) {
	h, _ := New(Murmur3, seed)
	a := h.Sum64([]int{0, 1, 2})
	b := h.Sum64([]int{0, 2, 1})
	if a == b {
		t.Errorf("expected different fingerprints for different orders, got %d twice", a)
	}
	if len(Ints(xxx)) != 8*len(xxx) {
		t.Errorf("expected %d bytes got %d", 8*len(xxx), len(Ints(xxx)))
	}
}

func TestSet(t *testing.T) {
	h, _ := New(Metro, seed)
	set := NewSet(h, 2000)
	for i := 0; i < 1000; i++ {
		if !set.Insert([]int{i, i + 1}) {
			t.Fatalf("value %d reported as a repeat", i)
		}
	}
	if set.Repeats() != 0 || set.Distinct() != 1000 {
		t.Fatalf("expected 1000 distinct values got %d (%d repeats)", set.Distinct(), set.Repeats())
	}
	// a true repeat is never missed
	for i := 0; i < 1000; i++ {
		if set.Insert([]int{i, i + 1}) {
			t.Fatalf("value %d not reported as a repeat", i)
		}
	}
	if set.Len() != 2000 || set.Repeats() != 1000 {
		t.Errorf("expected 2000 insertions and 1000 repeats got %d and %d", set.Len(), set.Repeats())
	}
}

func BenchmarkMurmur3(b *testing.B) {
	h, _ := New(Murmur3, seed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Sum64(xxx)
	}
}

func BenchmarkMetro(b *testing.B) {
	h, _ := New(Metro, seed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Sum64(xxx)
	}
}

func BenchmarkMurmur316Unsafe(b *testing.B) {
	src := Ints(xxx)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hi, lo := murmur3.SeedSum128(0, 2, src)
		unsafeslice.ByteSliceFromUint64Slice([]uint64{hi, lo})
	}
}

func BenchmarkSetInsert(b *testing.B) {
	h, _ := New(Murmur3, seed)
	set := NewSet(h, uint(b.N))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Insert([]int{i})
	}
}
