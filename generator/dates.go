package generator

import "time"

// Today returns the run's anchor date at midnight UTC.
func (g *Generator) Today() time.Time {
	y, m, d := g.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateBetween samples a calendar day uniformly from [from, to], both inclusive.
// Arguments are truncated to their dates; a reversed range is swapped.
func (g *Generator) DateBetween(from, to time.Time) time.Time {
	from, to = dateOf(from), dateOf(to)
	if to.Before(from) {
		from, to = to, from
	}

	days := int(to.Sub(from).Hours() / 24)
	return from.AddDate(0, 0, g.rand.IntN(days+1))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
