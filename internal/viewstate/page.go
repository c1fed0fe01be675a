package viewstate

import (
	"sync"

	"github.com/Zachkp/portfolio/internal/signal"
)

// State is a point-in-time copy of every flag on a page.
type State struct {
	MenuOpen  bool
	Scrolled  bool
	ModalOpen bool
}

// Page is the root of one rendered portfolio. It owns the projects modal and
// learns about open requests only through its signal channel; it closes the
// modal directly.
//
// All methods are safe for concurrent use. They are serialized per page, which
// stands in for the browser's single UI thread.
type Page struct {
	mu      sync.Mutex
	signals *signal.Channel
	dirty   Regions
	nav     *Navbar
	scroll  ScrollObserver
	modal   Flag
	unsubs  []func()
	mounted bool
}

// NewPage returns an unmounted page whose nested components emit on ch.
func NewPage(ch *signal.Channel) *Page {
	p := &Page{signals: ch}
	p.nav = newNavbar(&p.dirty)
	p.modal = newFlag(RegionModal, &p.dirty)
	return p
}

// Signals is the channel nested components emit on.
func (p *Page) Signals() *signal.Channel {
	return p.signals
}

// Mount subscribes the page to its signals and attaches the scroll observer.
// Mounting a mounted page does nothing.
func (p *Page) Mount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mounted {
		return
	}
	p.mounted = true
	p.scroll.Attach(p.nav)
	p.unsubs = append(p.unsubs, p.signals.Subscribe(signal.OpenProjectsModal, p.openModal))
}

// Unmount releases every subscription. After it returns no handler of this
// page runs again.
func (p *Page) Unmount() {
	p.mu.Lock()
	unsubs := p.unsubs
	p.unsubs = nil
	p.mounted = false
	p.scroll.Detach()
	p.mu.Unlock()

	for _, unsubscribe := range unsubs {
		unsubscribe()
	}
}

// Mounted reports whether the page is subscribed.
func (p *Page) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mounted
}

func (p *Page) openModal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	// an emission racing Unmount may still reach us
	if !p.mounted {
		return
	}
	p.modal.Set(true)
}

// CloseModal hides the projects modal.
func (p *Page) CloseModal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modal.Set(false)
}

// ModalOpen reports whether the projects modal is shown.
func (p *Page) ModalOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modal.Get()
}

// ToggleMenu flips the mobile navigation menu.
func (p *Page) ToggleMenu() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nav.ToggleMenu()
}

// FollowLink records that a navigation link was followed.
func (p *Page) FollowLink(s Section) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nav.FollowLink(s)
}

// Scroll delivers a viewport scroll event and reports whether the scrolled
// flag changed.
func (p *Page) Scroll(offset float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scroll.Observe(offset)
}

// Snapshot copies the current flags.
func (p *Page) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state()
}

// Dirty returns the regions changed since the last call, together with the
// state to render them from.
func (p *Page) Dirty() ([]Region, State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dirty.Drain(), p.state()
}

func (p *Page) state() State {
	return State{
		MenuOpen:  p.nav.MenuOpen(),
		Scrolled:  p.nav.Scrolled(),
		ModalOpen: p.modal.Get(),
	}
}
