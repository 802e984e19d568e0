package ui

import (
	"sync"
	"time"

	"github.com/kyrah/portfolio/internal/contact"
	"github.com/kyrah/portfolio/internal/content"
)

// Card id prefixes, so project and certification ids never collide.
const (
	projectCard       = "project:"
	certificationCard = "certification:"
)

// ViewState is everything one visitor can change on the page. Mutations
// are serialized by mu; the contact form carries its own lock because a
// submission suspends for the simulated delay.
type ViewState struct {
	mu            sync.Mutex
	menu          Menu
	experiences   Accordion
	certification Modal[content.Certification]
	cards         Cards
	lastSeen      time.Time
	Contact       *contact.Form
}

func NewViewState(now time.Time) *ViewState {
	return &ViewState{
		lastSeen: now,
		Contact:  &contact.Form{},
	}
}

// Snapshot is an immutable copy of a ViewState for rendering.
type Snapshot struct {
	Menu          Menu
	Experiences   Accordion
	Certification Modal[content.Certification]
	Cards         Cards
}

func (s Snapshot) Project(id string) Card {
	return s.Cards.Get(projectCard + id)
}

func (s Snapshot) CertificationCard(id string) Card {
	return s.Cards.Get(certificationCard + id)
}

func (v *ViewState) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *ViewState) snapshotLocked() Snapshot {
	return Snapshot{
		Menu:          v.menu,
		Experiences:   v.experiences.clone(),
		Certification: v.certification,
		Cards:         v.cards.clone(),
	}
}

// apply runs fn under the lock and returns the resulting snapshot.
func (v *ViewState) apply(fn func()) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn()
	return v.snapshotLocked()
}

func (v *ViewState) ToggleMenu() Snapshot {
	return v.apply(v.menu.Toggle)
}

func (v *ViewState) SelectNav() Snapshot {
	return v.apply(v.menu.Select)
}

func (v *ViewState) ToggleExperience(id string) Snapshot {
	return v.apply(func() { v.experiences.Toggle(id) })
}

func (v *ViewState) OpenCertification(c content.Certification) Snapshot {
	return v.apply(func() { v.certification.Open(c) })
}

func (v *ViewState) CloseCertification() Snapshot {
	return v.apply(v.certification.Close)
}

func (v *ViewState) ToggleProject(id string) Snapshot {
	return v.apply(func() { v.cards.ToggleExpanded(projectCard + id) })
}

func (v *ViewState) OpenProjectDialog(id string) Snapshot {
	return v.apply(func() { v.cards.OpenDialog(projectCard + id) })
}

func (v *ViewState) CloseProjectDialog(id string) Snapshot {
	return v.apply(func() { v.cards.CloseDialog(projectCard + id) })
}

func (v *ViewState) ToggleCertificationCard(id string) Snapshot {
	return v.apply(func() { v.cards.ToggleExpanded(certificationCard + id) })
}

func (v *ViewState) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *ViewState) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return now.Sub(v.lastSeen)
}
