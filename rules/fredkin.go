package rules

/*
ApplyFredkinRules applies the Fredkin parity rule to an aging cell.

Only the orthogonal neighbors are counted. An odd count keeps or brings the cell
to life, an even count kills it. A cell that stays alive ages by one; every other
transition leaves the age untouched.
*/
func ApplyFredkinRules(neighbors int, alive bool, age int) (bool, int) {
	odd := neighbors%2 == 1
	if alive && odd {
		return true, age + 1
	}
	return odd, age
}
