package viewstate

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Zachkp/portfolio/internal/signal"
)

// Property: after any sequence of scroll events the flag equals Scrolled(last).
func TestScrolledDependsOnlyOnLatestOffset(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("scrolled flag tracks the latest offset", prop.ForAll(
		func(offsets []float64) bool {
			p := NewPage(signal.New())
			p.Mount()
			defer p.Unmount()

			for _, off := range offsets {
				p.Scroll(off)
				if p.Snapshot().Scrolled != (off > ScrollThreshold) {
					return false
				}
			}
			if len(offsets) == 0 {
				return !p.Snapshot().Scrolled
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(-200, 5000)),
	))

	properties.TestingRun(t)
}

// Property: the nav region is marked exactly when the decision flips.
func TestScrollMarksNavOnlyOnFlip(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("one nav render per flip", prop.ForAll(
		func(offsets []float64) bool {
			p := NewPage(signal.New())
			p.Mount()
			defer p.Unmount()

			prev := false
			for _, off := range offsets {
				p.Scroll(off)
				regions, _ := p.Dirty()
				flipped := Scrolled(off) != prev
				prev = Scrolled(off)
				if flipped != (len(regions) == 1 && regions[0] == RegionNav) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 120)),
	))

	properties.TestingRun(t)
}

// Property: any interleaving of opens and closes leaves the modal in the
// state of the last operation.
func TestModalFollowsLastAction(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("modal reflects last open or close", prop.ForAll(
		func(opens []bool) bool {
			p := NewPage(signal.New())
			p.Mount()
			defer p.Unmount()

			want := false
			for _, open := range opens {
				if open {
					p.Signals().Emit(signal.OpenProjectsModal)
				} else {
					p.CloseModal()
				}
				want = open
			}
			return p.ModalOpen() == want
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
