package domain

// Results maps each accepted choice to its number of votes.
type Results map[Choice]int

func NewResults() Results {
	results := make(Results, len(Choices))
	for _, c := range Choices {
		results[c] = 0
	}
	return results
}

// Total is the number of counted votes.
func (r Results) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// Tally counts votes per choice. Votes carrying an unknown choice are ignored.
func Tally(votes []Vote) Results {
	results := NewResults()
	for _, v := range votes {
		if !v.Choice.Valid() {
			continue
		}
		results[v.Choice]++
	}
	return results
}
