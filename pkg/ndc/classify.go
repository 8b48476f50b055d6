package ndc

// Classify determines which segmentation scheme produced code. It never
// fails: inputs it cannot place return Unknown with Ambiguous confidence.
//
// The two lengths are asymmetric by nature. An 11-digit code carries its
// padding zero at a position that identifies the 10-digit layout it came
// from, so detection is a positional rule and the result is Certain. A
// 10-digit code has no self-describing marker, so detection falls back
// to scored plausibility heuristics and is at best Heuristic.
func Classify(code string) (Variant, Confidence) {
	switch len(code) {
	case 11:
		return classify11(code)
	case 10:
		return classify10(code)
	}
	return Unknown, Ambiguous
}

// classify11 finds the padding zero of an 11-digit code. First match
// wins: the positions can overlap, and a position-1 zero is the only
// pattern that pads at the labeler boundary rather than internally.
func classify11(code string) (Variant, Confidence) {
	switch {
	case code[0] == '0':
		return FourFourTwo, Certain
	case code[5] == '0':
		return FiveThreeTwo, Certain
	case code[9] == '0':
		return FiveFourOne, Certain
	}
	return Unknown, Ambiguous
}

// classify10 scores the three candidate layouts of a 10-digit code.
//
// Scoring policy:
//   - 4-4-2 scores 2 when the leading digit is 0-3: legacy 4-digit
//     labeler codes were assigned in the low ranges, which is the
//     strongest signal available.
//   - 5-4-1 scores 2 when the digit at index 5 is 0: under 5-4-1 that
//     is the first digit of a 4-digit product segment, and a leading
//     zero there is what zero-padding looks like.
//   - 5-3-2 scores 1 when the leading digit is 4-9: modern 5-digit
//     labelers dominate that range and 5-3-2 is the most common
//     modern layout.
//
// A strict winner is Heuristic; a tie for the top score is Ambiguous.
// This path never returns Certain.
func classify10(code string) (Variant, Confidence) {
	scores := map[Variant]int{}
	if code[0] <= '3' {
		scores[FourFourTwo] += 2
	} else {
		scores[FiveThreeTwo]++
	}
	if code[5] == '0' {
		scores[FiveFourOne] += 2
	}

	best, bestScore, tied := Unknown, 0, false
	for _, v := range []Variant{FourFourTwo, FiveThreeTwo, FiveFourOne} {
		switch s := scores[v]; {
		case s > bestScore:
			best, bestScore, tied = v, s, false
		case s == bestScore && s > 0:
			tied = true
		}
	}
	if tied || bestScore == 0 {
		return Unknown, Ambiguous
	}
	return best, Heuristic
}
