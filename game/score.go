package game

// Score compares a guess against a secret. correct counts digits matching
// both value and position, misplaced counts digits present in the secret at
// a different position. Both inputs must have passed ValidNumber, so every
// digit appears at most once and correct+misplaced never exceeds 4.
func Score(guess, secret string) (correct, misplaced int) {
	for i := 0; i < len(guess); i++ {
		if guess[i] == secret[i] {
			correct++
			continue
		}
		for j := 0; j < len(secret); j++ {
			if guess[i] == secret[j] {
				misplaced++
				break
			}
		}
	}
	return correct, misplaced
}
