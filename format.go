package uncert

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders a value under an explicit settings store. Named values
// render as "<name> = <value-string>"; constants render as "".
func Format(v Value, s *Settings) string {
	p, ok := v.displayPair(s)
	if !ok {
		return ""
	}
	str := FormatPair(p, s)
	if name := v.Name(); name != "" {
		return name + " = " + str
	}
	return str
}

// FormatPair renders a value/uncertainty pair under the given settings'
// print style and significant-figure policy. A pair whose value is positive
// infinity renders as the literal "inf" under every style and mode.
func FormatPair(p Pair, s *Settings) string {
	if math.IsInf(p.Value, 1) {
		return "inf"
	}
	_, style, mode, figs := s.snapshot()

	decimals := sigFigDecimals(p, mode, figs)

	switch style {
	case StyleScientific:
		return formatScientific(p, decimals)
	case StyleLatex:
		return formatLatex(p, decimals)
	default:
		return formatFixed(p.Value, decimals) + " +/- " + formatFixed(p.Err, decimals)
	}
}

// sigFigDecimals returns the decimal place both quantities are rounded to.
// The anchor quantity is rounded to figs significant figures and the other
// quantity is matched to the same decimal place. Automatic and error modes
// anchor on the uncertainty, value mode on the value; a zero or non-finite
// anchor falls back to the other quantity.
func sigFigDecimals(p Pair, mode SigFigMode, figs int) int {
	anchor := p.Err
	fallback := p.Value
	if mode == SigFigValue {
		anchor, fallback = p.Value, p.Err
	}
	if !anchorable(anchor) {
		anchor = fallback
	}
	if !anchorable(anchor) {
		return 0
	}
	order := int(math.Floor(math.Log10(math.Abs(anchor))))
	return figs - 1 - order
}

func anchorable(x float64) bool {
	return x != 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

func roundTo(x float64, decimals int) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}

func formatFixed(x float64, decimals int) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	prec := decimals
	if prec < 0 {
		prec = 0
	}
	return strconv.FormatFloat(roundTo(x, decimals), 'f', prec, 64)
}

// sharedExponent returns the power of ten both quantities are scaled by in
// scientific and latex styles, taken from the value (or the uncertainty for
// a zero value).
func sharedExponent(p Pair) int {
	ref := p.Value
	if !anchorable(ref) {
		ref = p.Err
	}
	if !anchorable(ref) {
		return 0
	}
	return int(math.Floor(math.Log10(math.Abs(ref))))
}

func formatScientific(p Pair, decimals int) string {
	exp := sharedExponent(p)
	mv, me, prec := mantissas(p, decimals, exp)
	return fmt.Sprintf("%se%d +/- %se%d",
		strconv.FormatFloat(mv, 'f', prec, 64), exp,
		strconv.FormatFloat(me, 'f', prec, 64), exp)
}

// formatLatex renders "<value> \pm <uncertainty>", switching to a shared
// \times10^{n} factor once the exponent reaches three in either direction.
func formatLatex(p Pair, decimals int) string {
	exp := sharedExponent(p)
	if exp > -3 && exp < 3 {
		return formatFixed(p.Value, decimals) + ` \pm ` + formatFixed(p.Err, decimals)
	}
	mv, me, prec := mantissas(p, decimals, exp)
	return fmt.Sprintf(`(%s \pm %s) \times 10^{%d}`,
		strconv.FormatFloat(mv, 'f', prec, 64),
		strconv.FormatFloat(me, 'f', prec, 64), exp)
}

// mantissas scales the rounded pair by 10^-exp and returns the matching
// mantissa precision.
func mantissas(p Pair, decimals, exp int) (mv, me float64, prec int) {
	scale := math.Pow(10, float64(exp))
	mv = roundTo(p.Value, decimals) / scale
	me = roundTo(p.Err, decimals) / scale
	prec = decimals + exp
	if prec < 0 {
		prec = 0
	}
	return mv, me, prec
}
