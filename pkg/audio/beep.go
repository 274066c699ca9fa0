package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// BeepGain adapts a beep volume effect to the [Gain] interface. Beep
// expresses volume as an exponent over a base, so a linear gain maps to
// log2 of itself with base 2, and zero maps to the dedicated silent
// flag rather than a large negative exponent.
type BeepGain struct {
	Volume *effects.Volume
}

// NewBeepTrack wraps a streamer in a volume effect and returns the track
// plus the wrapped streamer to hand to the speaker. The track starts
// silent.
func NewBeepTrack(name string, streamer beep.Streamer) (*Track, *effects.Volume) {
	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Silent:   true,
	}
	return NewTrack(name, &BeepGain{Volume: vol}), vol
}

// SetGain implements [Gain].
func (g *BeepGain) SetGain(v float64) {
	if v <= 0 {
		g.Volume.Silent = true
		g.Volume.Volume = 0
		return
	}
	g.Volume.Silent = false
	g.Volume.Volume = math.Log2(v)
}
