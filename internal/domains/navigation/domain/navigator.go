package domain

import (
	"errors"
	"fmt"
)

// Section names a page section of the storefront document.
type Section string

const (
	SectionShop     Section = "shop"
	SectionCart     Section = "cart"
	SectionCheckout Section = "checkout"
	SectionSuccess  Section = "success"
)

// ErrUnknownSection is returned for section ids outside the closed set.
var ErrUnknownSection = errors.New("unknown page section")

// Sections lists every section in document order.
func Sections() []Section {
	return []Section{SectionShop, SectionCart, SectionCheckout, SectionSuccess}
}

// ParseSection validates a raw section id.
func ParseSection(raw string) (Section, error) {
	s := Section(raw)
	for _, known := range Sections() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
}

// Entry is a navigation link that targets a section.
type Entry struct {
	Section Section
	Label   string
}

// DefaultEntries are the links shown in the header. Checkout and success
// have no entry and so never carry the active marker.
func DefaultEntries() []Entry {
	return []Entry{
		{Section: SectionShop, Label: "Shop"},
		{Section: SectionCart, Label: "Cart"},
	}
}

// Navigator tracks the single visible section. There is no history.
type Navigator struct {
	current Section
	entries []Entry
}

// NewNavigator starts on the shop section.
func NewNavigator(entries []Entry) *Navigator {
	return &Navigator{current: SectionShop, entries: append([]Entry(nil), entries...)}
}

// Go makes section the only visible one. Unknown sections leave state as is.
func (n *Navigator) Go(section Section) error {
	if _, err := ParseSection(string(section)); err != nil {
		return err
	}
	n.current = section
	return nil
}

func (n *Navigator) Current() Section {
	return n.current
}

// Active returns the entry marked active, if any maps to the current section.
func (n *Navigator) Active() (Entry, bool) {
	for _, e := range n.entries {
		if e.Section == n.current {
			return e, true
		}
	}
	return Entry{}, false
}

func (n *Navigator) Entries() []Entry {
	return append([]Entry(nil), n.entries...)
}
