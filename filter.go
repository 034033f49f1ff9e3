package main

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown project category")

// ParseCategory maps a filter button value to its Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Filters {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func matchesFilter(p Project, c Category) bool {
	return c == CategoryAll || p.Category == c
}

// FilterProjects returns the catalog entries in category, or all of them for
// CategoryAll. Order is preserved.
func FilterProjects(catalog []Project, c Category) []Project {
	out := make([]Project, 0, len(catalog))
	for _, p := range catalog {
		if matchesFilter(p, c) {
			out = append(out, p)
		}
	}
	return out
}

// SelectFilter changes the project filter. Unknown categories leave it as is.
func (p *Portfolio) SelectFilter(category string) error {
	c, err := ParseCategory(category)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filter = c
	return nil
}

// Filter returns the selected category.
func (p *Portfolio) Filter() Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

// FilteredProjects is the derived project list for the current filter.
func (p *Portfolio) FilteredProjects() []Project {
	return FilterProjects(Projects(), p.Filter())
}
