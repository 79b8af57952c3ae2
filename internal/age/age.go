package age

import "time"

// AgeData computes how long ago then was and whether timing data exists.
// Future times clamp to zero.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	age := now.Sub(then)
	if age < 0 {
		age = 0
	}
	return age, true
}

// UntilData computes the signed duration from now until then and whether
// timing data exists. The result is negative once then has passed.
func UntilData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	return then.Sub(now), true
}
