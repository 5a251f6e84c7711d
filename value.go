package uncert

import (
	"fmt"
	"math"
)

// Value is a quantity with one or more value/uncertainty pairs. It is
// implemented only by Measured, Derived, and Const; instances come from the
// measurement factory and the propagation operations, never from struct
// literals.
type Value interface {
	fmt.Stringer

	// Value returns the central value.
	Value() float64

	// Err returns the uncertainty on the value. Never negative.
	Err() float64

	// Name returns the optional name given to this quantity.
	Name() string

	// Unit returns the unit text. Units are stored verbatim; no parsing or
	// combination is done.
	Unit() string

	// displayPair returns the pair to print under the given settings, or
	// false when the value carries nothing informative to report (Const).
	displayPair(s *Settings) (Pair, bool)

	// methodPair returns the pair propagation should read for the given
	// method. Values with a single recorded pair return it for every method.
	methodPair(m Method) Pair
}

// Measured is a quantity recorded directly by the user, either as a single
// reading or as repeated samples of the same quantity. In the repeated case
// the recorded pair is the sample mean and population standard deviation, and
// the raw samples are preserved until the pair is mutated directly.
type Measured struct {
	val  float64
	unc  float64
	name string
	unit string
	raw  []float64 // nil unless built from samples; cleared on demotion
}

// Value returns the recorded central value.
func (m *Measured) Value() float64 { return m.val }

// Err returns the recorded uncertainty.
func (m *Measured) Err() float64 { return m.unc }

// RelativeErr returns uncertainty/value, or 0 for a zero-valued measurement.
func (m *Measured) RelativeErr() float64 {
	if m.val == 0 {
		return 0
	}
	return m.unc / m.val
}

// Name returns the name given to this measurement.
func (m *Measured) Name() string { return m.name }

// Unit returns the unit text of this measurement.
func (m *Measured) Unit() string { return m.unit }

// SetName renames the measurement.
func (m *Measured) SetName(name string) { m.name = name }

// SetUnit replaces the unit text. The text is stored verbatim.
func (m *Measured) SetUnit(unit string) { m.unit = unit }

// SetValue replaces the recorded central value. On a sample-built
// measurement this demotes the instance: the raw samples are discarded
// permanently and a warning is surfaced.
func (m *Measured) SetValue(v float64) {
	m.val = v
	m.demote("value")
}

// SetErr replaces the recorded uncertainty. Rejects negative input with no
// state change. On a sample-built measurement a successful call demotes the
// instance (see SetValue).
func (m *Measured) SetErr(e float64) error {
	if e < 0 {
		return &InputError{
			Code:    ErrCodeNegativeError,
			Message: fmt.Sprintf("uncertainty must be non-negative, got %v", e),
		}
	}
	m.unc = e
	m.demote("uncertainty")
	return nil
}

// SetRelativeErr sets the uncertainty as a fraction of the central value.
// Rejects negative input. On a sample-built measurement a successful call
// demotes the instance (see SetValue).
func (m *Measured) SetRelativeErr(rel float64) error {
	if rel < 0 {
		return &InputError{
			Code:    ErrCodeNegativeError,
			Message: fmt.Sprintf("relative uncertainty must be non-negative, got %v", rel),
		}
	}
	m.unc = math.Abs(m.val) * rel
	m.demote("uncertainty")
	return nil
}

// RawData returns a copy of the samples this measurement was built from.
// Reports false for single readings and for demoted measurements.
func (m *Measured) RawData() ([]float64, bool) {
	if m.raw == nil {
		return nil, false
	}
	out := make([]float64, len(m.raw))
	copy(out, m.raw)
	return out, true
}

// String renders the measurement under the global settings.
func (m *Measured) String() string {
	return Format(m, GlobalSettings())
}

func (m *Measured) displayPair(*Settings) (Pair, bool) {
	return Pair{Value: m.val, Err: m.unc}, true
}

func (m *Measured) methodPair(Method) Pair {
	return Pair{Value: m.val, Err: m.unc}
}

// demote discards the raw samples after a direct mutation. One-way.
func (m *Measured) demote(what string) {
	if m.raw == nil {
		return
	}
	m.raw = nil
	warn("modifying the %s of a repeated measurement discards its raw sample data", what)
}

// Derived is the result of an operation on other values. It stores one pair
// per propagation method, all computed at operation time. Which pair prints
// is resolved at display time: the pinned method if one was set, otherwise
// the settings store's current error method.
type Derived struct {
	results map[Method]Pair
	pinned  Optional[Method]
	name    string
	unit    string
}

// Value returns the central value under the resolved method.
func (d *Derived) Value() float64 {
	return d.resolved(GlobalSettings()).Value
}

// Err returns the uncertainty under the resolved method.
func (d *Derived) Err() float64 {
	return d.resolved(GlobalSettings()).Err
}

// Result returns the pair computed under a specific propagation method.
func (d *Derived) Result(m Method) (Pair, bool) {
	p, ok := d.results[m]
	return p, ok
}

// PinMethod fixes the method this value displays with, overriding the
// settings store. Rejects unrecognized methods.
func (d *Derived) PinMethod(m Method) error {
	if !m.Valid() {
		return &ConfigError{
			Field:   "error_method",
			Message: fmt.Sprintf("unknown method %q", string(m)),
		}
	}
	d.pinned = Optional[Method]{Value: m, Set: true}
	return nil
}

// PinnedMethod returns the pinned method, if any.
func (d *Derived) PinnedMethod() (Method, bool) {
	return d.pinned.Get()
}

// Unpin clears the pinned method; display follows the settings store again.
func (d *Derived) Unpin() {
	d.pinned = Optional[Method]{}
}

// Name returns the name given to this value.
func (d *Derived) Name() string { return d.name }

// Unit returns the unit text. Propagated results carry no unit unless one is
// set explicitly.
func (d *Derived) Unit() string { return d.unit }

// SetName names the derived value.
func (d *Derived) SetName(name string) { d.name = name }

// SetUnit sets the unit text verbatim.
func (d *Derived) SetUnit(unit string) { d.unit = unit }

// String renders the value under the global settings, using the pinned
// method if set.
func (d *Derived) String() string {
	return Format(d, GlobalSettings())
}

func (d *Derived) resolved(s *Settings) Pair {
	return d.results[d.pinned.OrDefault(s.ErrorMethod())]
}

func (d *Derived) displayPair(s *Settings) (Pair, bool) {
	return d.resolved(s), true
}

func (d *Derived) methodPair(m Method) Pair {
	return d.results[m]
}

// Const is a plain number participating in an operation with a Value. It
// carries no uncertainty and prints as an empty string.
type Const struct {
	val float64
}

// Value returns the constant's value.
func (c Const) Value() float64 { return c.val }

// Err returns 0; constants are exact.
func (c Const) Err() float64 { return 0 }

// Name returns "".
func (c Const) Name() string { return "" }

// Unit returns "".
func (c Const) Unit() string { return "" }

// String returns ""; a constant carries no uncertainty worth reporting.
func (c Const) String() string { return "" }

func (c Const) displayPair(*Settings) (Pair, bool) {
	return Pair{}, false
}

func (c Const) methodPair(Method) Pair {
	return Pair{Value: c.val}
}
