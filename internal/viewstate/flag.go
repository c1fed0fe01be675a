// Package viewstate holds the ephemeral UI state of one rendered portfolio
// page: the navigation bar's menu and scroll flags and the root's modal flag.
//
// Every flag belongs to a Region. A flag change marks its region dirty, and
// the transport re-renders exactly the dirty regions.
package viewstate

// Region names a subtree of the page that renders independently.
type Region string

const (
	RegionNav   Region = "nav"
	RegionModal Region = "modal"
)

// Regions is an insertion-ordered set of dirty regions.
type Regions struct {
	order []Region
}

// Mark adds r unless it is already pending.
func (rs *Regions) Mark(r Region) {
	for _, existing := range rs.order {
		if existing == r {
			return
		}
	}
	rs.order = append(rs.order, r)
}

// Drain returns the pending regions and clears the set.
func (rs *Regions) Drain() []Region {
	out := rs.order
	rs.order = nil
	return out
}

// Empty reports whether no region is pending.
func (rs *Regions) Empty() bool {
	return len(rs.order) == 0
}

// Flag is a boolean cell owned by a region. Its zero value is false.
type Flag struct {
	value bool
	owner Region
	dirty *Regions
}

func newFlag(owner Region, dirty *Regions) Flag {
	return Flag{owner: owner, dirty: dirty}
}

// Get returns the current value.
func (f *Flag) Get() bool {
	return f.value
}

// Set stores v and reports whether the value changed. Only a change marks the
// owning region for re-render.
func (f *Flag) Set(v bool) bool {
	if f.value == v {
		return false
	}
	f.value = v
	if f.dirty != nil {
		f.dirty.Mark(f.owner)
	}
	return true
}
