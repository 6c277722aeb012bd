package schema

// cpfValid reports whether s carries a CPF with correct check digits.
// Formatting characters are ignored; exactly 11 digits must remain.
// Sequences of one repeated digit pass the modulus test but are not
// valid CPFs, so they are rejected up front.
func cpfValid(s string) bool {
	digits := make([]int, 0, 11)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	same := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}

	return checkDigit(digits, 9) == digits[9] && checkDigit(digits, 10) == digits[10]
}

// checkDigit computes the modulus-11 verifier over the first n digits.
func checkDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		return 0
	}
	return rest
}
