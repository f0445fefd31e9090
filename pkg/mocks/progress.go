package mocks

// Progress counts ticks instead of rendering a spinner.
type Progress struct {
	Ticks    int
	Finished bool
}

// Tick increments the tick counter.
func (p *Progress) Tick() { p.Ticks++ }

// Finish marks the indicator finished.
func (p *Progress) Finish() { p.Finished = true }
