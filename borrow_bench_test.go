package borrow

import "testing"

func BenchmarkSharedBorrowRelease(b *testing.B) {
	cell := NewCell(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := cell.Borrow()
		_ = g.Value()
		g.Release()
	}
}

func BenchmarkExclusiveBorrowRelease(b *testing.B) {
	cell := NewCell(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := cell.BorrowMut()
		*w.Value()++
		w.Release()
	}
}

func BenchmarkMapChain(b *testing.B) {
	type pair struct {
		k string
		v int
	}

	cell := NewCell(pair{k: "k", v: 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := Map(cell.Borrow(), func(p pair) int { return p.v })
		_ = g.Value()
		g.Release()
	}
}

func BenchmarkDeriveRelease(b *testing.B) {
	cell := NewCell([]string{"a", "b", "c"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, err := MapDerive(cell.Borrow(), func(items []string) (int, error) {
			return len(items), nil
		})
		if err != nil {
			b.Fatal(err)
		}

		d.Release()
	}
}
