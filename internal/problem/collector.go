package problem

// Collector gathers problems from independent parse steps so a parser can
// report them all at once.
type Collector struct {
	problems []Problem
}

// Add records p. Zero problems are ignored.
func (c *Collector) Add(p Problem) {
	if p.IsZero() {
		return
	}
	c.problems = append(c.problems, p)
}

// Len returns the number of recorded problems.
func (c *Collector) Len() int {
	return len(c.problems)
}

// Problem combines everything recorded so far.
func (c *Collector) Problem() (Problem, bool) {
	return CombineAll(c.problems)
}
