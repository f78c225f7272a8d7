package production

// completeShares synthesizes the complementary share for a two-factor
// technology described with a single share parameter. Given exactly two
// factors and exactly one share s, the returned list is [s, "1 - s"].
// Any other combination returns shares unchanged: it will either be
// broadcast later or rejected by length validation.
func completeShares(shares, factors []string) []string {
	if len(factors) != 2 {
		return shares
	}

	if len(shares) == 1 {
		return []string{shares[0], "1 - " + shares[0]}
	}

	return shares
}
