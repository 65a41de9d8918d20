package model

// Unit is the unit-of-measure tag carried by a Product.
type Unit string

const (
	UnitBox      Unit = "box"
	UnitLiter    Unit = "liter"
	UnitGram     Unit = "gram"
	UnitKilogram Unit = "kilogram"
	UnitEach     Unit = "each"
)

// DefaultUnit is what unrecognized or missing unit tags coerce to.
const DefaultUnit = UnitBox

// NormalizeUnit maps a raw tag onto the enumerated set. Anything it does not
// recognize (including the empty string) becomes DefaultUnit, so hand-edited
// transfer documents never fail on the unit field.
func NormalizeUnit(raw string) Unit {
	switch Unit(raw) {
	case UnitBox, UnitLiter, UnitGram, UnitKilogram, UnitEach:
		return Unit(raw)
	}
	return DefaultUnit
}
