package console

import "testing"

func TestNewConsoleStepsWithoutCartridge(t *testing.T) {
	c := New()
	for i := 0; i < 100; i++ {
		c.Step()
	}
}

func TestSetControllerButtonsIgnoresOutOfRangePlayer(t *testing.T) {
	c := New()
	c.SetControllerButtons(2, 0xFF)
	c.SetControllerButtons(-1, 0xFF)
	c.SetControllerButtons(0, 0xFF)
}

func TestFrameCompleteIsOneShot(t *testing.T) {
	c := New()
	c.PPU.FrameReady = true
	if !c.FrameComplete() {
		t.Fatalf("expected FrameComplete to report true once PPU.FrameReady is set")
	}
	if c.FrameComplete() {
		t.Fatalf("FrameComplete should consume the signal, not report it twice")
	}
}
