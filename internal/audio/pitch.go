package audio

const maxVoices = 4

// PitchFor maps the number of grains poured in a frame to a tone frequency
// in Hz, from 220 Hz for a single grain up to 880 Hz for a full brush.
func PitchFor(n int) float64 {
	if n < 1 {
		n = 1
	}
	if n > 25 {
		n = 25
	}
	return 220 + float64(n-1)*(880-220)/24
}
