//go:build !purego

package dsp

import (
	"github.com/tphakala/simd/f64"
	"golang.org/x/sys/cpu"
)

func init() {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		dotImpl = f64.DotProduct
		mulImpl = f64.Mul
		accelerated = true
	}
}
