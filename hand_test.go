package playground

import (
	"errors"
	"testing"
)

func TestGenerateHandGeometry(t *testing.T) {
	for _, size := range []int{1, 2, 5, 12} {
		l := DefaultLayout()
		l.HandSize = size
		hand, err := GenerateHand(l, NewRand(7))
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if len(hand) != size {
			t.Fatalf("size %d: got %d cards", size, len(hand))
		}
		for i, c := range hand {
			wantX := l.OriginX + float64(i)*(l.CardWidth+l.Spacing)
			if c.Bounds.X != wantX || c.Bounds.Y != l.OriginY {
				t.Errorf("size %d card %d at (%v, %v), want (%v, %v)",
					size, i, c.Bounds.X, c.Bounds.Y, wantX, l.OriginY)
			}
			if c.Bounds.Width != l.CardWidth || c.Bounds.Height != l.CardHeight {
				t.Errorf("card %d size %vx%v", i, c.Bounds.Width, c.Bounds.Height)
			}
			if c.Velocity != (Vec2{}) {
				t.Errorf("card %d velocity %v, want zero", i, c.Velocity)
			}
			if c.ID != uint32(i+1) {
				t.Errorf("card %d ID = %d, want %d", i, c.ID, i+1)
			}
			if i > 0 {
				if d := c.Bounds.X - hand[i-1].Bounds.X; d != l.CardWidth+l.Spacing {
					t.Errorf("card %d step %v, want %v", i, d, l.CardWidth+l.Spacing)
				}
			}
		}
	}
}

func TestGenerateHandSameGeometryDifferentSeeds(t *testing.T) {
	a, err := GenerateHand(DefaultLayout(), NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateHand(DefaultLayout(), NewRand(2))
	if err != nil {
		t.Fatal(err)
	}
	sameColors := true
	for i := range a {
		if a[i].Bounds != b[i].Bounds {
			t.Errorf("card %d bounds differ: %v vs %v", i, a[i].Bounds, b[i].Bounds)
		}
		if a[i].Color != b[i].Color {
			sameColors = false
		}
	}
	if sameColors {
		t.Error("different seeds produced identical colors")
	}
}

func TestGenerateHandSeedIsDeterministic(t *testing.T) {
	a, _ := GenerateHand(DefaultLayout(), NewRand(99))
	b, _ := GenerateHand(DefaultLayout(), NewRand(99))
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("card %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateHandRejectsInvalidLayout(t *testing.T) {
	l := DefaultLayout()
	l.CardHeight = 0
	hand, err := GenerateHand(l, NewRand(1))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if hand != nil {
		t.Errorf("hand = %v, want nil", hand)
	}
}
