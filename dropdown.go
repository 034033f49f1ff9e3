package main

import "errors"

var ErrUnknownSocial = errors.New("unknown social link")

// ToggleSocial flips the social dropdown.
func (p *Portfolio) ToggleSocial() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.socialOpen = !p.socialOpen
}

// PointerDown closes the dropdown when target lies outside it. Targets the
// layout does not know count as outside.
func (p *Portfolio) PointerDown(target string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.layout.Contains(dropdownElementID, target) {
		p.socialOpen = false
	}
}

// SelectSocial closes the dropdown and resolves the chosen link. The menu
// closes even when the name is unknown.
func (p *Portfolio) SelectSocial(name string) (SocialLink, error) {
	p.mu.Lock()
	p.socialOpen = false
	p.mu.Unlock()

	link, ok := findSocial(name)
	if !ok {
		return SocialLink{}, ErrUnknownSocial
	}
	return link, nil
}

// SocialOpen reports whether the social menu is showing.
func (p *Portfolio) SocialOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.socialOpen
}

// ChevronClass flips the dropdown chevron while the menu is open.
func (v View) ChevronClass() string {
	if v.SocialOpen {
		return "transition-transform duration-300 rotate-180"
	}
	return "transition-transform duration-300"
}
