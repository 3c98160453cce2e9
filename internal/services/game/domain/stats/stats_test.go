package stats

import "testing"

func TestCopyIsIndependent(t *testing.T) {
	original := New(3, 4, 1, 2)
	clone := original.Copy()
	clone.Add(Strength, 10)
	clone.Set(Luck, -5)

	if original.Get(Strength) != 3 {
		t.Fatalf("original strength = %d, want 3", original.Get(Strength))
	}
	if original.Get(Luck) != 1 {
		t.Fatalf("original luck = %d, want 1", original.Get(Luck))
	}
	if clone.Get(Strength) != 13 {
		t.Fatalf("clone strength = %d, want 13", clone.Get(Strength))
	}
}

func TestCopyOfNilBlock(t *testing.T) {
	var b Block
	clone := b.Copy()
	clone.Set(Endurance, 2)
	if clone.Get(Endurance) != 2 {
		t.Fatalf("endurance = %d, want 2", clone.Get(Endurance))
	}
}

func TestGetMissingAttributeIsZero(t *testing.T) {
	b := Block{Strength: 1}
	if got := b.Get(Intelligence); got != 0 {
		t.Fatalf("intelligence = %d, want 0", got)
	}
}

func TestNegativeValuesAreKept(t *testing.T) {
	b := New(0, 0, 0, 0)
	b.Add(Endurance, -7)
	if got := b.Get(Endurance); got != -7 {
		t.Fatalf("endurance = %d, want -7", got)
	}
}
