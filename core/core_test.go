package core

import "testing"

func TestHandle_Pack(t *testing.T) {
	h := NewHandle(42, 7)
	if h.Index() != 42 || h.Generation() != 7 {
		t.Errorf("Expected (42,7), got (%d,%d)", h.Index(), h.Generation())
	}
	if h.IsZero() {
		t.Error("Packed handle should not be zero")
	}
	if !Handle(0).IsZero() {
		t.Error("Zero handle should report zero")
	}
	if NewHandle(42, 8) == h {
		t.Error("Generations must distinguish handles")
	}
}

func TestRGB_Blend(t *testing.T) {
	if got := RGBBlack.Blend(RGBWhite, 0.5); got != (RGB{127, 127, 127}) {
		t.Errorf("Expected mid gray, got %v", got)
	}
	if got := RGBBlack.Blend(RGBRed, 0); got != RGBBlack {
		t.Errorf("Expected dst at alpha 0, got %v", got)
	}
	if got := RGBBlack.Blend(RGBRed, 1); got != RGBRed {
		t.Errorf("Expected src at alpha 1, got %v", got)
	}
}

func TestRGB_Modulate(t *testing.T) {
	if got := RGBWhite.Modulate(RGBRedOrange); got != RGBRedOrange {
		t.Errorf("Expected white to take the tint, got %v", got)
	}
	if got := RGBYellow.Modulate(RGB{0, 255, 255}); got != (RGB{0, 255, 0}) {
		t.Errorf("Expected green, got %v", got)
	}
}

func TestFaction_String(t *testing.T) {
	if FactionPlayer.String() != "player" || FactionAlien.String() != "alien" || Faction(9).String() != "unknown" {
		t.Error("Unexpected faction names")
	}
}
