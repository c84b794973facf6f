package core

import "testing"

func TestInputFrameMaskRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
	}{
		{"empty", nil},
		{"single", []Action{ActionShoot}},
		{"diagonal with fire", []Action{ActionUp, ActionRight, ActionShoot}},
		{"pause only", []Action{ActionPause}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}

			back := FrameFromMask(f.Mask())
			for a := ActionNone + 1; a < actionCount; a++ {
				if back.Has(a) != f.Has(a) {
					t.Errorf("action %s: got %v, expected %v", a, back.Has(a), f.Has(a))
				}
			}
		})
	}
}

func TestInputFrameMaskIgnoresNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	if f.Mask() != 0 {
		t.Errorf("Mask() = %d, expected 0 for ActionNone", f.Mask())
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}
