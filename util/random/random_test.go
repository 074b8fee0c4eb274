package random

import "testing"

func TestSeq(t *testing.T) {
	for _, n := range []int{0, 1, 16, 32} {
		s := Seq(n)
		if len(s) != n {
			t.Errorf("Seq(%d) returned %d characters", n, len(s))
		}
		for _, c := range s {
			switch {
			case c >= '0' && c <= '9':
			case c >= 'a' && c <= 'z':
			case c >= 'A' && c <= 'Z':
			default:
				t.Errorf("Seq produced non-alphanumeric character %q", c)
			}
		}
	}
}

func TestNum(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := Num(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Num(10) = %d, out of range", v)
		}
	}
}
