// Package ndc converts National Drug Codes between the legacy 10-digit
// segmentations and the standardized 11-digit 5-4-2 layout.
package ndc

// Variant identifies a segmentation scheme for an NDC code: three
// dash-delimited segments (labeler, product, package) whose digit
// lengths are fixed per scheme.
type Variant string

const (
	FourFourTwo  Variant = "4-4-2"
	FiveThreeTwo Variant = "5-3-2"
	FiveFourOne  Variant = "5-4-1"
	// FiveFourTwo is the single standardized 11-digit layout.
	FiveFourTwo Variant = "5-4-2"
	Unknown     Variant = "unknown"
)

// Confidence indicates how certain the classifier is about a variant.
type Confidence string

const (
	// Certain means the variant follows from a positional rule.
	Certain Confidence = "certain"
	// Heuristic means a single candidate scored strictly highest.
	Heuristic Confidence = "heuristic"
	// Ambiguous means no candidate could be singled out.
	Ambiguous Confidence = "ambiguous"
)

// Direction selects which way a code is converted.
type Direction string

const (
	To11Digit Direction = "10to11"
	To10Digit Direction = "11to10"
)

// Segments returns the segment lengths of the variant, or zeros for Unknown.
func (v Variant) Segments() [3]int {
	switch v {
	case FourFourTwo:
		return [3]int{4, 4, 2}
	case FiveThreeTwo:
		return [3]int{5, 3, 2}
	case FiveFourOne:
		return [3]int{5, 4, 1}
	case FiveFourTwo:
		return [3]int{5, 4, 2}
	}
	return [3]int{}
}

// Length returns the total digit count the variant implies (10 or 11),
// or 0 for Unknown.
func (v Variant) Length() int {
	s := v.Segments()
	return s[0] + s[1] + s[2]
}

// padIndex is the index at which the variant's padding zero is inserted
// when converting to 11 digits, and removed when converting back.
func (v Variant) padIndex() int {
	switch v {
	case FourFourTwo:
		return 0 // labeler padded from 4 to 5 digits
	case FiveThreeTwo:
		return 5 // product padded from 3 to 4 digits
	case FiveFourOne:
		return 9 // package padded from 1 to 2 digits
	}
	return -1
}
