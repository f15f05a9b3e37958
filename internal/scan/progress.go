package scan

// Progress carries optional callbacks the pipeline invokes as it works, so
// console concerns (counters, progress bars) stay out of the pipeline itself.
// A nil *Progress or a nil callback is a no-op.
type Progress struct {
	// Scanned is called after each file is statted with the cumulative count.
	Scanned func(total int)
	// HashBegin is called once before the digest stage with the number of
	// files about to be hashed.
	HashBegin func(total int)
	// Hashed is called after each digest attempt, successful or not.
	Hashed func(path string)
}

func (p *Progress) scanned(total int) {
	if p != nil && p.Scanned != nil {
		p.Scanned(total)
	}
}

func (p *Progress) hashBegin(total int) {
	if p != nil && p.HashBegin != nil {
		p.HashBegin(total)
	}
}

func (p *Progress) hashed(path string) {
	if p != nil && p.Hashed != nil {
		p.Hashed(path)
	}
}
