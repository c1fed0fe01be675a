package viewstate

// ScrollThreshold is the vertical offset past which the navigation bar
// switches to its compact chrome.
const ScrollThreshold = 50

// Scrolled reduces a vertical scroll offset to the compact-chrome decision.
func Scrolled(offset float64) bool {
	return offset > ScrollThreshold
}

// Section is an in-page navigation target.
type Section string

const (
	SectionAbout   Section = "about"
	SectionWork    Section = "work"
	SectionSkills  Section = "skills"
	SectionContact Section = "contact"
)

// Sections returns the navigation links in display order.
func Sections() []Section {
	return []Section{SectionAbout, SectionWork, SectionSkills, SectionContact}
}

// ParseSection maps a link anchor to its section.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections() {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// Label is the link text shown in the navigation bar.
func (s Section) Label() string {
	switch s {
	case SectionAbout:
		return "About"
	case SectionWork:
		return "Work"
	case SectionSkills:
		return "Skills"
	case SectionContact:
		return "Contact"
	}
	return string(s)
}

// Navbar owns the mobile menu and scroll flags.
type Navbar struct {
	menu     Flag
	scrolled Flag
}

func newNavbar(dirty *Regions) *Navbar {
	return &Navbar{
		menu:     newFlag(RegionNav, dirty),
		scrolled: newFlag(RegionNav, dirty),
	}
}

// MenuOpen reports whether the mobile menu is expanded.
func (n *Navbar) MenuOpen() bool { return n.menu.Get() }

// Scrolled reports whether the page is past ScrollThreshold.
func (n *Navbar) Scrolled() bool { return n.scrolled.Get() }

// ToggleMenu flips the mobile menu.
func (n *Navbar) ToggleMenu() {
	n.menu.Set(!n.menu.Get())
}

// FollowLink closes the mobile menu. The browser performs the jump to the
// section itself.
func (n *Navbar) FollowLink(Section) {
	n.menu.Set(false)
}

// OnScroll recomputes the scrolled flag and reports whether it changed.
func (n *Navbar) OnScroll(offset float64) bool {
	return n.scrolled.Set(Scrolled(offset))
}

// ScrollObserver forwards viewport scroll offsets to a navigation bar while
// attached.
type ScrollObserver struct {
	nav *Navbar
}

// Attach starts forwarding to nav.
func (o *ScrollObserver) Attach(nav *Navbar) {
	o.nav = nav
}

// Detach stops forwarding.
func (o *ScrollObserver) Detach() {
	o.nav = nil
}

// Attached reports whether scroll events are being forwarded.
func (o *ScrollObserver) Attached() bool {
	return o.nav != nil
}

// Observe handles one scroll event and reports whether the flag changed.
func (o *ScrollObserver) Observe(offset float64) bool {
	if o.nav == nil {
		return false
	}
	return o.nav.OnScroll(offset)
}
