package tween

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/fogleman/ease"
	"github.com/pkg/errors"
)

// An EaseFunc shapes normalised progress before it is interpolated. It does
// not have to be monotonic or stay within [0,1].
type EaseFunc func(t float64) float64

// DefaultEase is used whenever no ease function is given.
var DefaultEase EaseFunc = ease.InOutQuad

var easings = map[string]EaseFunc{
	"linear":       ease.Linear,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"inquart":      ease.InQuart,
	"outquart":     ease.OutQuart,
	"inoutquart":   ease.InOutQuart,
	"inquint":      ease.InQuint,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"incirc":       ease.InCirc,
	"outcirc":      ease.OutCirc,
	"inoutcirc":    ease.InOutCirc,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
}

// parametric curves, keyed like easings, built from a single parameter.
var parametric = map[string]func(float64) EaseFunc{
	"inback":    InBackAmount,
	"outback":   OutBackAmount,
	"inatan":    InAtan,
	"outatan":   OutAtan,
	"inoutatan": InOutAtan,
}

// LookupEase finds a standard ease function by name. Names are matched
// without regard to case, so "inOutQuad" and "InOutQuad" are the same.
func LookupEase(name string) (EaseFunc, bool) {
	e, ok := easings[strings.ToLower(name)]
	return e, ok
}

// EaseNames lists the names accepted by LookupEase.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseEase resolves a plain name such as "outQuad" or a parameterised curve
// such as "outAtan(10)". An empty string gives DefaultEase.
func ParseEase(spec string) (EaseFunc, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return DefaultEase, nil
	}

	open := strings.IndexByte(spec, '(')
	if open < 0 {
		if e, ok := LookupEase(spec); ok {
			return e, nil
		}
		return nil, errors.Errorf("unknown ease %q", spec)
	}

	if !strings.HasSuffix(spec, ")") {
		return nil, errors.Errorf("malformed ease %q", spec)
	}

	name := strings.ToLower(strings.TrimSpace(spec[:open]))
	build, ok := parametric[name]
	if !ok {
		return nil, errors.Errorf("ease %q takes no parameter", spec[:open])
	}

	arg, err := strconv.ParseFloat(strings.TrimSpace(spec[open+1:len(spec)-1]), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad parameter for ease %q", spec)
	}

	return build(arg), nil
}

// InBackAmount backs up by an amount s before moving forward.
func InBackAmount(s float64) EaseFunc {
	return func(t float64) float64 {
		return t * t * ((s+1)*t - s)
	}
}

// OutBackAmount overshoots the end by an amount s then settles.
func OutBackAmount(s float64) EaseFunc {
	return func(t float64) float64 {
		t--
		return t*t*((s+1)*t+s) + 1
	}
}

// InAtan accelerates along an arctangent curve; a controls the steepness.
func InAtan(a float64) EaseFunc {
	m := math.Atan(a)
	return func(t float64) float64 {
		return math.Atan((t-1)*a)/m + 1
	}
}

// OutAtan decelerates along an arctangent curve.
func OutAtan(a float64) EaseFunc {
	m := math.Atan(a)
	return func(t float64) float64 {
		return math.Atan(t*a) / m
	}
}

func InOutAtan(a float64) EaseFunc {
	m := math.Atan(0.5 * a)
	return func(t float64) float64 {
		return math.Atan((t-0.5)*a)/(2*m) + 0.5
	}
}
