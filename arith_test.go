package masterclock

import "testing"

func TestGCD32(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{12, 8, 4},
		{17, 5, 1},
		{100, 100, 100},
		{7, 1, 1},
	}
	for _, c := range cases {
		if got := gcd32(c.a, c.b); got != c.want {
			t.Errorf("gcd32(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLCM32(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{3, 5, 15},
		{10, 7, 70},
		{1000000, 9600, 6000000},
		{4, 6, 12},
	}
	for _, c := range cases {
		if got := lcm32(c.a, c.b); got != c.want {
			t.Errorf("lcm32(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLCM64(t *testing.T) {
	if got := lcm64(3, 5); got != 15 {
		t.Errorf("lcm64(3, 5) = %d, want 15", got)
	}
	big := lcm64(999999937, 2) // large prime * 2
	if big != 999999937*2 {
		t.Errorf("lcm64 overflowed or miscomputed: got %d", big)
	}
}
