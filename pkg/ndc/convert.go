package ndc

import "fmt"

// ParseDirection validates a direction string.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case To11Digit, To10Digit:
		return Direction(s), nil
	}
	return "", fmt.Errorf("ndc: invalid direction %q, want %q or %q", s, To11Digit, To10Digit)
}

// Result is the outcome of a conversion: the output code, the variant
// that was inferred or assumed for the input, and how confident the
// classifier was about it. Constructed once per call, never mutated.
type Result struct {
	Code       string     `json:"code"`
	Variant    Variant    `json:"variant"`
	Confidence Confidence `json:"confidence"`
}

// Convert moves code between the 10- and 11-digit forms by inserting or
// removing the single padding zero at the position variant implies.
// The variant tags the 10-digit side of the conversion in both
// directions. Callers that force a known variant get Certain confidence;
// the To11/To10 pipeline replaces it with the classifier's verdict.
func Convert(code string, variant Variant, direction Direction) (Result, error) {
	idx := variant.padIndex()
	if idx < 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrUnconvertible, code)
	}

	switch direction {
	case To11Digit:
		if len(code) != 10 {
			return Result{}, fmt.Errorf("%w: got %d digits, want 10 for %s", ErrInvalidLength, len(code), direction)
		}
		out := code[:idx] + "0" + code[idx:]
		return Result{Code: out, Variant: variant, Confidence: Certain}, nil
	case To10Digit:
		if len(code) != 11 {
			return Result{}, fmt.Errorf("%w: got %d digits, want 11 for %s", ErrInvalidLength, len(code), direction)
		}
		out := code[:idx] + code[idx+1:]
		return Result{Code: out, Variant: variant, Confidence: Certain}, nil
	}
	return Result{}, fmt.Errorf("ndc: unknown direction %q", direction)
}

// To11 converts a raw NDC to the standardized 11-digit 5-4-2 form:
// normalize, classify the existing 10-digit layout, insert the padding
// zero. An input that is already 11 digits passes through unchanged.
func To11(raw string) (Result, error) {
	code, err := Normalize(raw)
	if err != nil {
		return Result{}, err
	}
	if len(code) == 11 {
		return Result{Code: code, Variant: FiveFourTwo, Confidence: Certain}, nil
	}

	variant, confidence := Classify(code)
	res, err := Convert(code, variant, To11Digit)
	if err != nil {
		return Result{}, err
	}
	res.Confidence = confidence
	return res, nil
}

// To10 converts a raw NDC back to its 10-digit origin: normalize,
// locate the padding zero, strip it. An input that is already 10 digits
// passes through unchanged, tagged with its classified layout.
func To10(raw string) (Result, error) {
	code, err := Normalize(raw)
	if err != nil {
		return Result{}, err
	}

	variant, confidence := Classify(code)
	if len(code) == 10 {
		return Result{Code: code, Variant: variant, Confidence: confidence}, nil
	}

	res, err := Convert(code, variant, To10Digit)
	if err != nil {
		return Result{}, err
	}
	res.Confidence = confidence
	return res, nil
}
