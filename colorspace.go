package okgrade

import "math"

// XYZ is a CIE 1931 XYZ tristimulus triple under the D65 white point.
type XYZ struct {
	X, Y, Z float64
}

// OKLab is a color in the OKLab perceptually uniform space.
// L is lightness (conceptually [0, ~1]); A and B are unconstrained
// signed chroma axes.
type OKLab struct {
	L, A, B float64
}

// OKLCH is the polar form of OKLab: lightness, chroma magnitude (C ≥ 0),
// and hue in degrees wrapped to [0, 360).
type OKLCH struct {
	L, C, H float64
}

// chromaEpsilon is the chroma magnitude at or below which hue is forced
// to 0: atan2 is numerically unstable that close to the origin.
const chromaEpsilon = 4e-6

const degPerRad = 180 / math.Pi

// LinearRGBToXYZ converts linear-light sRGB components to CIE XYZ (D65).
// The matrix is the CSS Color 4 lin_sRGB_to_XYZ reference, kept verbatim
// so round trips match other implementations bit-for-bit.
func LinearRGBToXYZ(r, g, b float64) XYZ {
	return XYZ{
		X: 0.4123907992659595*r + 0.3575843393838780*g + 0.1804807884018343*b,
		Y: 0.2126390058715104*r + 0.7151686787677559*g + 0.0721923153607337*b,
		Z: 0.0193308187155918*r + 0.1191947797946260*g + 0.9505321522496606*b,
	}
}

// LinearRGB converts XYZ (D65) back to linear-light sRGB components.
// CSS Color 4: XYZ_to_lin_sRGB.
func (v XYZ) LinearRGB() (r, g, b float64) {
	r = 3.2409699419045213*v.X + -1.5373831775700935*v.Y + -0.4986107602930033*v.Z
	g = -0.9692436362808798*v.X + 1.8759675015077206*v.Y + 0.0415550574071756*v.Z
	b = 0.0556300796969936*v.X + -0.2039769588889766*v.Y + 1.0569715142428786*v.Z
	return r, g, b
}

// OKLab converts XYZ (D65) to OKLab. CSS Color 4: XYZ_to_OKLab.
//
// The intermediate LMS cone responses pass through a sign-preserving cube
// root (math.Cbrt; Cbrt(0) == 0, no NaN for negative inputs from
// out-of-gamut colors).
func (v XYZ) OKLab() OKLab {
	l := 0.8190224379967030*v.X + 0.3619062600528904*v.Y + -0.1288737815209879*v.Z
	m := 0.0329836539323885*v.X + 0.9292868615863434*v.Y + 0.0361446663506424*v.Z
	s := 0.0481771893596242*v.X + 0.2642395317527308*v.Y + 0.6335478284694309*v.Z

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return OKLab{
		L: 0.2104542683093140*lp + 0.7936177747023054*mp + -0.0040720430116193*sp,
		A: 1.9779985324311684*lp + -2.4285922420485799*mp + 0.4505937096174110*sp,
		B: 0.0259040424655478*lp + 0.7827717124575296*mp + -0.8086757549230774*sp,
	}
}

// XYZ converts OKLab back to XYZ (D65). CSS Color 4: OKLab_to_XYZ.
//
// The inverse of the forward cube root is a plain cube: cubing a real
// number already preserves sign, so the asymmetry with OKLab() is
// intentional.
func (lab OKLab) XYZ() XYZ {
	lp := 1.0*lab.L + 0.3963377773761749*lab.A + 0.2158037573099136*lab.B
	mp := 1.0*lab.L + -0.1055613458156586*lab.A + -0.0638541728258133*lab.B
	sp := 1.0*lab.L + -0.0894841775298119*lab.A + -1.2914855480194092*lab.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	return XYZ{
		X: 1.2268798758459243*l + -0.5578149944602171*m + 0.2813910456659647*s,
		Y: -0.0405757452148008*l + 1.1122868032803170*m + -0.0717110580655164*s,
		Z: -0.0763729366746601*l + -0.4214933324022432*m + 1.5869240198367816*s,
	}
}

// OKLCH converts OKLab to its polar form. Hue is wrapped to [0, 360);
// when chroma is at or below chromaEpsilon the hue is forced to 0.
func (lab OKLab) OKLCH() OKLCH {
	c := math.Sqrt(lab.A*lab.A + lab.B*lab.B)
	h := math.Atan2(lab.B, lab.A) * degPerRad
	if h < 0 {
		h += 360
	}
	if c <= chromaEpsilon {
		h = 0
	}
	return OKLCH{L: lab.L, C: c, H: h}
}

// OKLab converts OKLCH back to Cartesian OKLab.
func (lch OKLCH) OKLab() OKLab {
	rad := lch.H * (math.Pi / 180)
	return OKLab{
		L: lch.L,
		A: lch.C * math.Cos(rad),
		B: lch.C * math.Sin(rad),
	}
}

// LinearRGB converts OKLCH all the way back to linear-light sRGB.
func (lch OKLCH) LinearRGB() (r, g, b float64) {
	return lch.OKLab().XYZ().LinearRGB()
}

// ToOKLCH converts linear-light sRGB components to OKLCH.
func ToOKLCH(r, g, b float64) OKLCH {
	return LinearRGBToXYZ(r, g, b).OKLab().OKLCH()
}
