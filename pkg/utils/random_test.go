package utils

import "testing"

func TestTurnRNG_Deterministic(t *testing.T) {
	a := TurnRNG(42, 7)
	b := TurnRNG(42, 7)

	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Same seed and turn must produce identical rolls")
		}
	}
}

func TestTurnRNG_TurnsDiffer(t *testing.T) {
	a := TurnRNG(42, 1)
	b := TurnRNG(42, 2)

	same := true
	for i := 0; i < 5; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	if same {
		t.Error("Different turns should produce different roll streams")
	}
}

func TestRoomRNG_RoomsDiffer(t *testing.T) {
	a := RoomRNG(42, 0)
	b := RoomRNG(42, 1)

	same := true
	for i := 0; i < 5; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			same = false
		}
	}
	if same {
		t.Error("Different rooms should produce different roll streams")
	}
}
