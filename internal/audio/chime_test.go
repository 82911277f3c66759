package audio

import (
	"testing"
	"time"
)

func TestToneStreamsExpectedLengthAndStaysInRange(t *testing.T) {
	tn := newTone(chimeSampleRate, chimeFrequency, chimeDuration)
	want := chimeSampleRate.N(chimeDuration)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tn.Stream(buf)
		if !ok {
			if n != 0 {
				t.Fatalf("drained stream returned n=%d", n)
			}
			break
		}
		for i := 0; i < n; i++ {
			l, r := buf[i][0], buf[i][1]
			if l < -1 || l > 1 || r < -1 || r > 1 {
				t.Fatalf("sample %d out of range: (%f, %f)", total+i, l, r)
			}
			if l != r {
				t.Fatalf("sample %d not mono: (%f, %f)", total+i, l, r)
			}
		}
		total += n
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if err := tn.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestToneDecays(t *testing.T) {
	tn := newTone(chimeSampleRate, chimeFrequency, 100*time.Millisecond)
	buf := make([][2]float64, tn.total)
	tn.Stream(buf)

	peakEarly, peakLate := 0.0, 0.0
	half := len(buf) / 2
	for i, s := range buf {
		v := s[0]
		if v < 0 {
			v = -v
		}
		if i < half && v > peakEarly {
			peakEarly = v
		}
		if i >= half && v > peakLate {
			peakLate = v
		}
	}
	if peakLate >= peakEarly {
		t.Errorf("envelope did not decay: early peak %f, late peak %f", peakEarly, peakLate)
	}
}

func TestNilChimeIsSilent(t *testing.T) {
	var c *Chime
	c.Play() // must not panic
}
