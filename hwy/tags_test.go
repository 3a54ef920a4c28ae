package hwy

import "testing"

func TestTagLanes(t *testing.T) {
	tests := []struct {
		name string
		tag  TypedTag[float32]
		want int
	}{
		{"scalable", ScalableTag[float32]{}, MaxLanes[float32]()},
		{"128bit", FixedTag128[float32]{}, 4},
		{"256bit", FixedTag256[float32]{}, 8},
		{"512bit", FixedTag512[float32]{}, 16},
		{"capped1", CappedTag[float32]{N: 1}, 1},
		{"capped3", CappedTag[float32]{N: 3}, min(3, MaxLanes[float32]())},
		{"capped0", CappedTag[float32]{}, 1},
		{"capped huge", CappedTag[float32]{N: 1 << 20}, MaxLanes[float32]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.MaxLanes(); got != tt.want {
				t.Errorf("%s.MaxLanes() = %d, want %d", tt.tag.Name(), got, tt.want)
			}
		})
	}
}

func TestFixedTagFloat64(t *testing.T) {
	if got := (FixedTag256[float64]{}).MaxLanes(); got != 4 {
		t.Errorf("FixedTag256[float64].MaxLanes() = %d, want 4", got)
	}
	if got := (FixedTag512[float64]{}).MaxLanes(); got != 8 {
		t.Errorf("FixedTag512[float64].MaxLanes() = %d, want 8", got)
	}
}

func TestCappedTagWidth(t *testing.T) {
	tag := CappedTag[float64]{N: 1}
	if tag.Width() != 8 {
		t.Errorf("CappedTag[float64]{1}.Width() = %d, want 8", tag.Width())
	}
	if tag.Name() != "capped1" {
		t.Errorf("CappedTag[float64]{1}.Name() = %q, want %q", tag.Name(), "capped1")
	}
}

func TestVL(t *testing.T) {
	tag := FixedTag256[float32]{}

	tests := []struct {
		remaining int
		want      int
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{7, 7},
		{8, 8},
		{9, 8},
		{1000, 8},
	}

	for _, tt := range tests {
		if got := VL[float32](tag, tt.remaining); got != tt.want {
			t.Errorf("VL(%d) = %d, want %d", tt.remaining, got, tt.want)
		}
	}
}

func TestVLStripMining(t *testing.T) {
	for _, n := range []int{0, 1, 5, 16, 17, 33} {
		tag := CappedTag[int32]{N: 4}
		var strips []int
		for off := 0; off < n; {
			vl := VL[int32](tag, n-off)
			strips = append(strips, vl)
			off += vl
		}

		total := 0
		for i, vl := range strips {
			total += vl
			if i < len(strips)-1 && vl != tag.MaxLanes() {
				t.Errorf("n=%d: strip %d has %d lanes, want %d", n, i, vl, tag.MaxLanes())
			}
		}
		if total != n {
			t.Errorf("n=%d: strips cover %d elements", n, total)
		}
	}
}

// Each tag satisfies TypedTag only for its own lane type.
var (
	_ TypedTag[float32] = ScalableTag[float32]{}
	_ TypedTag[float64] = FixedTag128[float64]{}
	_ TypedTag[int32]   = FixedTag256[int32]{}
	_ TypedTag[int64]   = FixedTag512[int64]{}
	_ TypedTag[float32] = CappedTag[float32]{}
)

func TestTagZero(t *testing.T) {
	tags := []TypedTag[float64]{
		ScalableTag[float64]{},
		FixedTag128[float64]{},
		FixedTag512[float64]{},
		CappedTag[float64]{N: 3},
	}
	for _, tag := range tags {
		v := tag.Zero()
		if v.NumLanes() != tag.MaxLanes() {
			t.Errorf("%s.Zero(): got %d lanes, want %d", tag.Name(), v.NumLanes(), tag.MaxLanes())
		}
		for i, x := range v.Data() {
			if x != 0 {
				t.Errorf("%s.Zero(): lane %d = %v, want 0", tag.Name(), i, x)
			}
		}
	}
}

func TestVLInfersLaneType(t *testing.T) {
	var tag TypedTag[float32] = CappedTag[float32]{N: 2}
	if got := VL(tag, 5); got != 2 {
		t.Errorf("VL(capped2, 5) = %d, want 2", got)
	}
	if got := VL(FixedTag128[int64]{}, 5); got != 2 {
		t.Errorf("VL(FixedTag128[int64], 5) = %d, want 2", got)
	}
}
