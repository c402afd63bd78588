package coordmap

import "testing"

var testOrigins = []Origin{
	{0, 0},
	{100, 100},
	{40, 12},
	{-7, 33},
	DefaultOrigin,
}

// ── Scalar conversions ──

func TestToCartesian(t *testing.T) {
	o := Origin{CenterX: 100, CenterY: 100}
	tests := []struct {
		v    int
		a    Axis
		want int
	}{
		{100, AxisX, 0},
		{150, AxisX, 50},
		{0, AxisX, -100},
		{100, AxisY, 0},
		{90, AxisY, 10},   // above the origin
		{130, AxisY, -30}, // below the origin
	}
	for _, tc := range tests {
		got := o.ToCartesian(tc.v, tc.a)
		if got != tc.want {
			t.Errorf("ToCartesian(%d, %v) = %d, want %d", tc.v, tc.a, got, tc.want)
		}
	}
}

func TestToWindow(t *testing.T) {
	o := Origin{CenterX: 100, CenterY: 100}
	tests := []struct {
		v    int
		a    Axis
		want int
	}{
		{0, AxisX, 100},
		{50, AxisX, 150},
		{-100, AxisX, 0},
		{0, AxisY, 100},
		{10, AxisY, 90},
		{-30, AxisY, 130},
	}
	for _, tc := range tests {
		got := o.ToWindow(tc.v, tc.a)
		if got != tc.want {
			t.Errorf("ToWindow(%d, %v) = %d, want %d", tc.v, tc.a, got, tc.want)
		}
	}
}

func TestInverseLaw(t *testing.T) {
	for _, o := range testOrigins {
		for v := -250; v <= 250; v += 7 {
			for _, a := range []Axis{AxisX, AxisY} {
				if got := o.ToWindow(o.ToCartesian(v, a), a); got != v {
					t.Fatalf("origin %v axis %v: ToWindow(ToCartesian(%d)) = %d", o, a, v, got)
				}
				if got := o.ToCartesian(o.ToWindow(v, a), a); got != v {
					t.Fatalf("origin %v axis %v: ToCartesian(ToWindow(%d)) = %d", o, a, v, got)
				}
			}
		}
	}
}

// ── Point conversions ──

func TestPointRoundTrip(t *testing.T) {
	for _, o := range testOrigins {
		for x := -20; x <= 20; x += 5 {
			for y := -20; y <= 20; y += 5 {
				w := WindowPoint{x, y}
				if got := o.Window(o.Cartesian(w)); got != w {
					t.Errorf("origin %v: Window(Cartesian(%v)) = %v", o, w, got)
				}
				c := Pt(x, y)
				if got := o.Cartesian(o.Window(c)); got != c {
					t.Errorf("origin %v: Cartesian(Window(%v)) = %v", o, c, got)
				}
			}
		}
	}
}

func TestWindowYFlipped(t *testing.T) {
	o := CenterOf(80, 24)
	up := o.Window(Pt(0, 5))
	down := o.Window(Pt(0, -5))
	if up.Y >= o.CenterY || down.Y <= o.CenterY {
		t.Errorf("expected +y above center and -y below, got up=%v down=%v center=%v", up, down, o)
	}
}

func TestCenterOf(t *testing.T) {
	if got := CenterOf(80, 24); got != (Origin{40, 12}) {
		t.Errorf("CenterOf(80,24) = %v, want 40,12", got)
	}
	if got := CenterOf(0, 0); got != (Origin{}) {
		t.Errorf("CenterOf(0,0) = %v, want 0,0", got)
	}
}

func TestShift(t *testing.T) {
	o := Origin{10, 10}.Shift(-3, 4)
	if o != (Origin{7, 14}) {
		t.Errorf("Shift: got %v, want 7,14", o)
	}
}

// ── Parse ──

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Origin
		wantErr bool
	}{
		{"100,100", Origin{100, 100}, false},
		{" 4 , -2 ", Origin{4, -2}, false},
		{"0,0", Origin{}, false},
		{"12", Origin{}, true},
		{"a,1", Origin{}, true},
		{"1,b", Origin{}, true},
		{"", Origin{}, true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseString(t *testing.T) {
	o := Origin{-12, 37}
	got, err := Parse(o.String())
	if err != nil || got != o {
		t.Errorf("Parse(String()) = %v, %v; want %v", got, err, o)
	}
}
