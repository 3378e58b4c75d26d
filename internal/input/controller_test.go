package input

import "testing"

func TestControllerLatchSequence(t *testing.T) {
	c := NewController()
	c.SetButtons(0b1010_0101)

	c.Write(1)
	c.Write(0)

	want := []uint8{1, 0, 1, 0, 0, 1, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Fatalf("read %d: got %d, want %d", i, got, w)
		}
	}

	for i := 0; i < 4; i++ {
		if got := c.Read(); got != 1 {
			t.Fatalf("stuck read %d: got %d, want 1", i, got)
		}
	}
}

func TestControllerStrobeHighAlwaysReturnsButtonA(t *testing.T) {
	c := NewController()
	c.SetButtons(uint8(ButtonA))
	c.Write(1)

	for i := 0; i < 5; i++ {
		if got := c.Read(); got != 1 {
			t.Fatalf("read %d with strobe high: got %d, want 1", i, got)
		}
	}
}

func TestControllerRestrobeResetsIndex(t *testing.T) {
	c := NewController()
	c.SetButtons(uint8(ButtonB))

	c.Write(1)
	c.Write(0)
	c.Read() // A = 0
	c.Read() // B = 1

	c.Write(1)
	c.Write(0)
	if got := c.Read(); got != 0 {
		t.Fatalf("after restrobe, first read (A) = %d, want 0", got)
	}
}
