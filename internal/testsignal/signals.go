// Package testsignal generates deterministic analysis frames for tests.
package testsignal

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

const (
	VariantTwoToneV1    = "two_tone_v1"
	VariantSpeechLikeV1 = "speech_like_v1"
	VariantAR1V1        = "ar1_v1"
)

var frameVariants = []string{
	VariantTwoToneV1,
	VariantSpeechLikeV1,
	VariantAR1V1,
}

func FrameVariants() []string {
	out := make([]string, len(frameVariants))
	copy(out, frameVariants)
	return out
}

// GenerateFrame returns samples of the named variant at sampleRate.
func GenerateFrame(variant string, sampleRate, samples int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if samples <= 0 {
		return nil, fmt.Errorf("invalid sample count: %d", samples)
	}

	switch variant {
	case VariantTwoToneV1:
		return TwoTone(sampleRate, samples, 440, 1250), nil
	case VariantSpeechLikeV1:
		return generateSpeechLike(sampleRate, samples), nil
	case VariantAR1V1:
		return AR1(samples, 0.9, 13), nil
	default:
		return nil, fmt.Errorf("unknown signal variant %q", variant)
	}
}

// TwoTone returns 0.5*sin(2*pi*f1*t) + 0.3*sin(2*pi*f2*t).
func TwoTone(sampleRate, samples int, f1, f2 float64) []float64 {
	signal := make([]float64, samples)
	for i := range signal {
		t := float64(i) / float64(sampleRate)
		signal[i] = 0.5*math.Sin(2*math.Pi*f1*t) + 0.3*math.Sin(2*math.Pi*f2*t)
	}
	return signal
}

// AR1 returns x[n] = rho*x[n-1] + e[n] driven by deterministic noise.
func AR1(samples int, rho float64, salt int) []float64 {
	signal := make([]float64, samples)
	prev := 0.0
	for i := range signal {
		prev = rho*prev + 0.1*deterministicNoise(i, salt)
		signal[i] = prev
	}
	return signal
}

// AR1Autocorrelation returns the normalized autocorrelation rho^l of an
// AR(1) process for l = 0..order.
func AR1Autocorrelation(rho float64, order int) []float64 {
	r := make([]float64, order+1)
	v := 1.0
	for l := range r {
		r[l] = v
		v *= rho
	}
	return r
}

// SinusoidAutocorrelation returns cos(w*l) for l = 0..order.
func SinusoidAutocorrelation(w float64, order int) []float64 {
	r := make([]float64, order+1)
	for l := range r {
		r[l] = math.Cos(w * float64(l))
	}
	return r
}

// Hamming returns an n-point symmetric Hamming window.
func Hamming(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// HashFloat64LE returns the hex SHA-256 of the little-endian IEEE bits.
func HashFloat64LE(samples []float64) string {
	h := sha256.New()
	var b [8]byte
	for _, s := range samples {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(s))
		_, _ = h.Write(b[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

func generateSpeechLike(sampleRate, samples int) []float64 {
	signal := make([]float64, samples)
	phase := 0.0
	prevNoise := 0.0
	for i := range signal {
		t := float64(i) / float64(sampleRate)

		pitchHz := 95.0 + 28.0*math.Sin(2*math.Pi*0.63*t) + 16.0*math.Sin(2*math.Pi*0.17*t)
		phase += 2 * math.Pi * pitchHz / float64(sampleRate)
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
		voiced := math.Sin(phase) + 0.35*math.Sin(2*phase) + 0.2*math.Sin(3*phase)

		noise := deterministicNoise(i, 71)
		high := noise - 0.86*prevNoise
		prevNoise = noise
		mix := 0.8*voiced + 0.2*high

		signal[i] = clipSample(0.6 * mix)
	}
	return signal
}

func deterministicNoise(sampleIdx, salt int) float64 {
	x := uint32(sampleIdx*1664525 + salt*1013904223)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return float64(int32(x)) / 2147483647.0
}

func clipSample(v float64) float64 {
	if v > 0.98 {
		return 0.98
	}
	if v < -0.98 {
		return -0.98
	}
	return v
}
