package game

// KeyStatus maps letters A–Z to the best result seen so far.
type KeyStatus map[rune]Result

// Record folds one scored guess into the key map. A key only ever moves up
// (absent → present → correct), so a Correct key is never downgraded.
func (k KeyStatus) Record(guess string, results []Result) {
	for i, ch := range []rune(guess) {
		if i >= len(results) {
			return
		}
		if results[i].rank() > k[ch].rank() {
			k[ch] = results[i]
		}
	}
}

// Get returns the status for ch, or "" if the key has not been used.
func (k KeyStatus) Get(ch rune) Result { return k[upper(ch)] }

func (k KeyStatus) clone() KeyStatus {
	out := make(KeyStatus, len(k))
	for ch, r := range k {
		out[ch] = r
	}
	return out
}
