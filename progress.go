//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

// Progressor displays the completion of a long running operation
type Progressor interface {
	Show(label string, percent float32)
	Stop()
}

type nilProgress struct{}

func (np *nilProgress) Show(string, float32) {}
func (np *nilProgress) Stop()                {}

// Progress counts completed units of work, and may be indicated
// from multiple goroutines.
type Progress struct {
	Progressor
	Label string

	total     int
	step      int
	completed chan struct{}
	done      chan struct{}
}

// NewProgress starts tracking 'total' units of work on 'display'; a nil
// display shows nothing.
func NewProgress(display Progressor, label string, total int) (prog *Progress) {
	if display == nil {
		display = &nilProgress{}
	}

	prog = &Progress{
		Progressor: display,
		Label:      label,
		total:      total,
		completed:  make(chan struct{}, 64),
		done:       make(chan struct{}),
	}

	// Refresh roughly once per percent
	prog.step = total / 100
	if prog.step < 1 {
		prog.step = 1
	}

	go func(prog *Progress) {
		prog.Show(prog.Label, 0.0)
		for completion := 1; completion <= prog.total; completion++ {
			<-prog.completed
			if completion%prog.step == 0 {
				prog.Show(prog.Label, float32(completion)*100.0/float32(prog.total))
			}
		}
		prog.Show(prog.Label, 100.0)
		prog.Stop()
		close(prog.done)
	}(prog)

	return
}

// Indicate marks one unit of work as complete
func (prog *Progress) Indicate() {
	prog.completed <- struct{}{}
}

// Close waits for all units of work to be indicated
func (prog *Progress) Close() {
	<-prog.done
}
