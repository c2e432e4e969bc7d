package tween

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Number is any scalar that can be scaled by a float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lerp is the default interpolation law, a*(1-t) + b*t.
func Lerp[N Number](a, b N, t float64) N {
	return N(float64(a)*(1-t) + float64(b)*t)
}

// Vector is a value closed under addition and scaling, such as mgl64.Vec3.
type Vector[V any] interface {
	Add(V) V
	Mul(float64) V
}

// LerpVector applies the default law component-wise through Add and Mul.
func LerpVector[V Vector[V]](a, b V, t float64) V {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// LerpQuat interpolates rotations along the shortest arc.
func LerpQuat(a, b mgl64.Quat, t float64) mgl64.Quat {
	return mgl64.QuatSlerp(a, b, t)
}

// LerpRgb blends colours linearly in RGB space.
func LerpRgb(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}

// LerpHcl blends colours through HCL, keeping hue transitions even.
func LerpHcl(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendHcl(b, t)
}

func LerpLab(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendLab(b, t)
}
