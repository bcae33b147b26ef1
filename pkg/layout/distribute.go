package layout

// Distribute splits target among rules laid out in sequence along one axis.
//
// The gaps between consecutive rules (see [Gaps]) are taken from target
// first. What remains is shared as follows:
//   - at or below the sum of minimums, every entry gets its minimum;
//   - between the sums of minimums and ideals, each entry gets its minimum
//     plus a share of the extra in proportion to ideal-min;
//   - above the sum of ideals, each entry gets its ideal and the excess is
//     shared among entries with non-zero stretch, in proportion to weight.
//     If nothing stretches the excess is left unused.
//
// Rounding remainders go to the earliest eligible entries.
func Distribute(rules []SizeRules, target int) []int {
	out := make([]int, len(rules))
	if len(rules) == 0 {
		return out
	}
	avail := target
	for _, g := range Gaps(rules) {
		avail -= g
	}

	sumMin, sumIdeal := 0, 0
	for _, r := range rules {
		sumMin += r.min
		sumIdeal += r.ideal
	}

	switch {
	case avail <= sumMin:
		for i, r := range rules {
			out[i] = r.min
		}
	case avail < sumIdeal:
		weights := make([]int, len(rules))
		for i, r := range rules {
			out[i] = r.min
			weights[i] = r.ideal - r.min
		}
		for i, extra := range share(avail-sumMin, weights) {
			out[i] += extra
		}
	default:
		weights := make([]int, len(rules))
		stretchy := false
		for i, r := range rules {
			out[i] = r.ideal
			weights[i] = int(r.stretch)
			stretchy = stretchy || r.stretch != StretchFixed
		}
		if stretchy {
			for i, extra := range share(avail-sumIdeal, weights) {
				out[i] += extra
			}
		}
	}
	return out
}

// share splits amount in proportion to weights. Remainders go one unit at a
// time to the earliest entries with non-zero weight. When all weights are
// zero the amount is split equally.
func share(amount int, weights []int) []int {
	out := make([]int, len(weights))
	if amount <= 0 || len(weights) == 0 {
		return out
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		weights = make([]int, len(out))
		for i := range weights {
			weights[i] = 1
		}
		total = len(weights)
	}
	given := 0
	for i, w := range weights {
		out[i] = amount * w / total
		given += out[i]
	}
	for i := 0; given < amount; i = (i + 1) % len(out) {
		if weights[i] > 0 {
			out[i]++
			given++
		}
	}
	return out
}
