package repcmd

import "testing"

func TestFieldKindWidth(t *testing.T) {
	cases := []struct {
		kind FieldKind
		want int
	}{
		{FieldI32, 4},
		{FieldI8, 1},
		{FieldF32, 4},
		{FieldV3F, 12},
	}
	for _, c := range cases {
		if got := c.kind.Width(); got != c.want {
			t.Errorf("%v.Width() = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestRefinerByCommandType(t *testing.T) {
	fs, ok := RefinerByCommandType(14)
	if !ok {
		t.Fatal("expected refiner for command type 14")
	}
	if len(fs) != 2 || fs[0] != FieldI32 || fs[1] != FieldI32 {
		t.Errorf("refiner for 14 = %v, want [I32 I32]", fs)
	}

	if _, ok := RefinerByCommandType(200); ok {
		t.Error("expected no refiner for unknown command type 200")
	}
}

func TestRefinerWidth(t *testing.T) {
	fs, ok := RefinerByCommandType(0)
	if !ok {
		t.Fatal("expected refiner for command type 0")
	}
	// I32,I32,I32,I32,V3F,F32,I32,I32,I32 = 4*4 + 12 + 4 + 4*3 = 16+12+4+12 = 44
	if got, want := RefinerWidth(fs), 44; got != want {
		t.Errorf("RefinerWidth(0) = %d, want %d", got, want)
	}
}

func TestRefiner41HasElevenI32sAndOneI8(t *testing.T) {
	fs, ok := RefinerByCommandType(41)
	if !ok {
		t.Fatal("expected refiner for command type 41")
	}
	if len(fs) != 12 {
		t.Fatalf("len(refiner 41) = %d, want 12", len(fs))
	}
	for i := 0; i < 11; i++ {
		if fs[i] != FieldI32 {
			t.Errorf("refiner 41 field %d = %v, want I32", i, fs[i])
		}
	}
	if fs[11] != FieldI8 {
		t.Errorf("refiner 41 last field = %v, want I8", fs[11])
	}
}
