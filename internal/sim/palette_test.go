package sim

import (
	"math/rand"
	"testing"
)

func TestRandomRestingNeverRepeats(t *testing.T) {
	cs := NewColorState(Cyan, rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		prev := cs.Resting
		cs.Observe(Result{BouncedX: true})
		if cs.Resting == prev {
			t.Fatalf("iteration %d: resting color repeated %v", i, prev)
		}
		if cs.Resting == Gold {
			t.Fatalf("iteration %d: gold drawn as a resting color", i)
		}
	}
}

func TestCornerHitStartsFlashAndRestsOnGold(t *testing.T) {
	cs := NewColorState(Cyan, rand.New(rand.NewSource(1)))
	cs.Observe(Result{BouncedX: true, BouncedY: true, CornerHit: true})

	if cs.Resting != Gold {
		t.Errorf("resting after corner hit = %v, want Gold", cs.Resting)
	}
	if !cs.Flashing() {
		t.Fatal("corner hit did not start a flash")
	}
}

func TestFlashRunsExactlyConfiguredFrames(t *testing.T) {
	cs := NewColorState(Cyan, rand.New(rand.NewSource(1)))
	cs.Observe(Result{CornerHit: true})

	for i := 0; i < CornerFlashFrames; i++ {
		want := flashPalette[i%len(flashPalette)].Color()
		got := cs.FrameColor()
		if got != want {
			t.Fatalf("flash frame %d: color = %v, want %v", i, got, want)
		}
	}
	if cs.Flashing() {
		t.Fatal("flash still active after configured frame count")
	}
	if got := cs.FrameColor(); got != Gold.Color() {
		t.Errorf("post-flash color = %v, want resting gold %v", got, Gold.Color())
	}
}

func TestCornerHitMidFlashRestartsCycle(t *testing.T) {
	cs := NewColorState(Cyan, rand.New(rand.NewSource(1)))
	cs.Observe(Result{CornerHit: true})

	// Burn through part of the flash, then hit another corner.
	for i := 0; i < 5; i++ {
		cs.FrameColor()
	}
	cs.Observe(Result{CornerHit: true})

	if got := cs.FrameColor(); got != flashPalette[0].Color() {
		t.Errorf("restarted flash frame 0 = %v, want %v", got, flashPalette[0].Color())
	}
	for i := 1; i < CornerFlashFrames; i++ {
		cs.FrameColor()
	}
	if cs.Flashing() {
		t.Error("restarted flash did not run the full frame count")
	}
}

func TestPlainBounceDoesNotFlash(t *testing.T) {
	cs := NewColorState(Cyan, rand.New(rand.NewSource(1)))
	cs.Observe(Result{BouncedY: true})
	if cs.Flashing() {
		t.Fatal("wall bounce must not start a flash")
	}
	if got := cs.FrameColor(); got != cs.Resting.Color() {
		t.Errorf("frame color = %v, want resting %v", got, cs.Resting.Color())
	}
}

func TestNoEventKeepsColor(t *testing.T) {
	cs := NewColorState(Blue, rand.New(rand.NewSource(1)))
	cs.Observe(Result{})
	if cs.Resting != Blue {
		t.Errorf("resting changed without a bounce: %v", cs.Resting)
	}
}
