package ui

// Variant selects the visual weight of a button. The zero value is
// VariantFilled.
type Variant uint8

const (
	VariantFilled Variant = iota
	VariantFlat
	VariantOutlined
)

func (v Variant) String() string {
	switch v {
	case VariantFlat:
		return "flat"
	case VariantOutlined:
		return "outlined"
	default:
		return "filled"
	}
}

// Color selects the palette of a button. The zero value is ColorPrimary.
type Color uint8

const (
	ColorPrimary Color = iota
	ColorSecondary
	ColorSuccess
	ColorInfo
	ColorWarn
	ColorDanger
)

func (c Color) String() string {
	switch c {
	case ColorSecondary:
		return "secondary"
	case ColorSuccess:
		return "success"
	case ColorInfo:
		return "info"
	case ColorWarn:
		return "warn"
	case ColorDanger:
		return "danger"
	default:
		return "primary"
	}
}

// Colors lists every color in declaration order.
var Colors = []Color{ColorPrimary, ColorSecondary, ColorSuccess, ColorInfo, ColorWarn, ColorDanger}

// Variants lists every variant in declaration order.
var Variants = []Variant{VariantFilled, VariantFlat, VariantOutlined}

// Size selects the dimensions of a button. The zero value is SizeNormal.
type Size uint8

const (
	SizeNormal Size = iota
	SizeSmall
	SizeBig
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeBig:
		return "big"
	default:
		return "normal"
	}
}

// Sizes lists every size from smallest to biggest.
var Sizes = []Size{SizeSmall, SizeNormal, SizeBig}
