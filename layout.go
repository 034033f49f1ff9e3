package main

import (
	"fmt"
	"strings"
)

const (
	rootElementID     = "page"
	dropdownElementID = "social-dropdown"
)

// Layout is the anchor tree of the rendered page: every element the server
// needs to reason about, keyed by DOM id, with a parent link. It backs the
// dropdown containment test, section lookup for navigation, and the set of
// fade-observable elements.
type Layout struct {
	parent   map[string]string
	sections map[string]struct{}
	fade     map[string]struct{}
}

func (l *Layout) add(id, parent string, fade bool) {
	l.parent[id] = parent
	if fade {
		l.fade[id] = struct{}{}
	}
}

// BuildLayout derives the tree from the catalog. The templates render the
// same ids through the element id helpers below.
func BuildLayout() *Layout {
	l := &Layout{
		parent:   map[string]string{rootElementID: ""},
		sections: map[string]struct{}{},
		fade:     map[string]struct{}{},
	}

	l.add("nav", rootElementID, false)
	l.add("menu-toggle", "nav", false)
	l.add("mobile-menu", "nav", false)
	for _, item := range navItems {
		l.add(navElementID(item.ID), "nav", false)
		l.add(mobileNavElementID(item.ID), "mobile-menu", false)
	}

	for _, s := range []string{"home", "projects", "skills", "achievements", "contact"} {
		l.add(s, rootElementID, false)
		l.sections[s] = struct{}{}
	}

	l.add("hero", "home", true)
	l.add("github-link", "hero", false)
	l.add(dropdownElementID, "hero", false)
	l.add("social-trigger", dropdownElementID, false)
	l.add("social-menu", dropdownElementID, false)
	for _, s := range socialLinks {
		l.add(socialElementID(s.Name), "social-menu", false)
	}
	l.add("contact-me", "hero", false)
	l.add("scroll-hint", "hero", false)

	l.add("projects-heading", "projects", true)
	l.add("projects-subtitle", "projects", true)
	l.add("project-filters", "projects", true)
	for _, f := range Filters {
		l.add(filterElementID(f), "project-filters", false)
	}
	l.add("projects-grid", "projects", false)
	for i := range projects {
		l.add(projectElementID(i), "projects-grid", true)
	}

	l.add("skills-heading", "skills", true)
	l.add("skills-subtitle", "skills", true)
	for _, g := range skillGroups {
		l.add(skillElementID(g.Category), "skills", true)
	}
	l.add("coursework", "skills", true)

	l.add("achievements-heading", "achievements", true)
	l.add("achievements-subtitle", "achievements", true)
	for i := range achievements {
		l.add(achievementElementID(i), "achievements", true)
	}
	l.add("mentorship", "achievements", true)

	l.add("contact-heading", "contact", true)
	l.add("contact-subtitle", "contact", true)
	l.add("contact-cards", "contact", true)
	l.add("contact-email", "contact-cards", false)
	l.add("contact-linkedin", "contact-cards", false)
	l.add("contact-github", "contact-cards", false)
	l.add("footer", "contact", true)

	return l
}

// Has reports whether id is an element of the page.
func (l *Layout) Has(id string) bool {
	_, ok := l.parent[id]
	return ok
}

// IsSection reports whether id is a scroll target.
func (l *Layout) IsSection(id string) bool {
	_, ok := l.sections[id]
	return ok
}

// IsFadeObservable reports whether id fades in on first view.
func (l *Layout) IsFadeObservable(id string) bool {
	_, ok := l.fade[id]
	return ok
}

// Contains reports whether target is ancestor itself or one of its
// descendants. Unknown ids are contained by nothing.
func (l *Layout) Contains(ancestor, target string) bool {
	if !l.Has(target) {
		return false
	}
	for id := target; id != ""; id = l.parent[id] {
		if id == ancestor {
			return true
		}
	}
	return false
}

// FadeObservable returns the ids of every fade-observable element.
func (l *Layout) FadeObservable() []string {
	ids := make([]string, 0, len(l.fade))
	for id := range l.fade {
		ids = append(ids, id)
	}
	return ids
}

func navElementID(section string) string       { return "nav-" + section }
func mobileNavElementID(section string) string { return "mobile-nav-" + section }
func filterElementID(c Category) string        { return "filter-" + string(c) }
func projectElementID(i int) string            { return fmt.Sprintf("project-%d", i) }
func skillElementID(category string) string    { return "skill-" + category }
func achievementElementID(i int) string        { return fmt.Sprintf("achievement-%d", i) }

func socialElementID(name string) string {
	return "social-link-" + strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
