package encoding

import "testing"

func TestPack16(t *testing.T) {
	for _, tt := range []struct{ hi, lo uint8 }{{0, 0}, {1, 2}, {255, 0}, {0, 255}, {200, 17}} {
		hi, lo := Unpack16(Pack16(tt.hi, tt.lo))
		if hi != tt.hi || lo != tt.lo {
			t.Fatalf("Unpack16(Pack16(%d, %d)) = %d, %d", tt.hi, tt.lo, hi, lo)
		}
	}
}

func TestScale8(t *testing.T) {
	cases := []struct {
		v, lo, hi float64
		want      uint8
	}{
		{v: 0, lo: 0, hi: 10, want: 0},
		{v: 10, lo: 0, hi: 10, want: 255},
		{v: 20, lo: 0, hi: 10, want: 255},
		{v: -5, lo: 0, hi: 10, want: 0},
		{v: 5, lo: 0, hi: 10, want: 127},
		{v: 5, lo: 10, hi: 10, want: 0},
	}
	for _, c := range cases {
		if got := Scale8(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Scale8(%v, %v, %v) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestByte(t *testing.T) {
	if Byte(nil) != 0 {
		t.Fatal("empty data should be 0")
	}
	if Byte(Bytes(0x5a)) != 0x5a {
		t.Fatal("Byte(Bytes(x)) != x")
	}
}
