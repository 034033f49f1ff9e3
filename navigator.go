package main

// ScrollTo records section as active and closes the mobile menu. It returns
// false, leaving the active section alone, when the page has no such anchor;
// the client only scrolls on true.
func (p *Portfolio) ScrollTo(section string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menuOpen = false
	if !p.layout.IsSection(section) {
		return false
	}
	p.activeSection = section
	return true
}

// ToggleMenu opens or closes the mobile menu.
func (p *Portfolio) ToggleMenu() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menuOpen = !p.menuOpen
}

// MenuOpen reports whether the mobile menu is showing.
func (p *Portfolio) MenuOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.menuOpen
}
