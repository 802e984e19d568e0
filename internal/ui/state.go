// Package ui holds the per-visitor interactive state of the portfolio page:
// the mobile menu, the experience accordion, the certification modal and the
// shared project/certification cards.
package ui

// Menu is the mobile navigation toggle. The zero value is closed.
type Menu struct {
	open bool
}

func (m *Menu) Toggle() { m.open = !m.open }

// Select is called when a nav link is followed; it always closes the menu.
func (m *Menu) Select() { m.open = false }

func (m Menu) IsOpen() bool { return m.open }

// Accordion tracks which entries are expanded. Absent ids are collapsed.
type Accordion struct {
	expanded map[string]bool
}

// Toggle flips id and returns its new value.
func (a *Accordion) Toggle(id string) bool {
	if a.expanded == nil {
		a.expanded = make(map[string]bool)
	}
	a.expanded[id] = !a.expanded[id]
	return a.expanded[id]
}

func (a Accordion) Expanded(id string) bool {
	return a.expanded[id]
}

func (a Accordion) clone() Accordion {
	if a.expanded == nil {
		return Accordion{}
	}
	m := make(map[string]bool, len(a.expanded))
	for k, v := range a.expanded {
		m[k] = v
	}
	return Accordion{expanded: m}
}

// Modal is either closed or open on exactly one item. The selection and the
// open flag are the same field, so an open modal without a selection cannot
// be represented.
type Modal[T any] struct {
	selected *T
}

// Open shows item, replacing any current selection.
func (m *Modal[T]) Open(item T) { m.selected = &item }

func (m *Modal[T]) Close() { m.selected = nil }

func (m Modal[T]) IsOpen() bool { return m.selected != nil }

// Selected returns the open item.
func (m Modal[T]) Selected() (T, bool) {
	if m.selected == nil {
		var zero T
		return zero, false
	}
	return *m.selected, true
}

// Card is the local state of one shared card.
type Card struct {
	Expanded   bool
	DialogOpen bool
}

// Cards keeps the state of many independent cards keyed by id.
type Cards struct {
	cards map[string]Card
}

func (c Cards) Get(id string) Card {
	return c.cards[id]
}

func (c *Cards) update(id string, fn func(*Card)) Card {
	if c.cards == nil {
		c.cards = make(map[string]Card)
	}
	card := c.cards[id]
	fn(&card)
	c.cards[id] = card
	return card
}

func (c *Cards) ToggleExpanded(id string) Card {
	return c.update(id, func(card *Card) { card.Expanded = !card.Expanded })
}

func (c *Cards) OpenDialog(id string) Card {
	return c.update(id, func(card *Card) { card.DialogOpen = true })
}

func (c *Cards) CloseDialog(id string) Card {
	return c.update(id, func(card *Card) { card.DialogOpen = false })
}

func (c Cards) clone() Cards {
	if c.cards == nil {
		return Cards{}
	}
	m := make(map[string]Card, len(c.cards))
	for k, v := range c.cards {
		m[k] = v
	}
	return Cards{cards: m}
}
