package translator

// Context is the mutable state threaded through one program translation.
// Both counters only ever grow, so labels stay unique across every file of
// the program.
type Context struct {
	// FileName scopes the static segment.
	FileName string

	BranchCounter int
	ReturnCounter int
}

func (c *Context) nextBranch() int {
	c.BranchCounter++
	return c.BranchCounter
}

func (c *Context) nextReturn() int {
	c.ReturnCounter++
	return c.ReturnCounter
}
