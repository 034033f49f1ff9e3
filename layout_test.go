package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_Contains(t *testing.T) {
	l := BuildLayout()

	tests := []struct {
		target string
		want   bool
	}{
		{dropdownElementID, true},
		{"social-trigger", true},
		{"social-menu", true},
		{socialElementID("CodeTube"), true},
		{"hero", false},
		{"projects", false},
		{rootElementID, false},
		{"", false},
		{"does-not-exist", false},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Contains(dropdownElementID, tt.target))
		})
	}
}

func TestLayout_EverythingUnderRoot(t *testing.T) {
	l := BuildLayout()
	for id := range l.parent {
		assert.True(t, l.Contains(rootElementID, id), id)
	}
}

func TestLayout_FadeObservable(t *testing.T) {
	l := BuildLayout()
	assert.True(t, l.IsFadeObservable("hero"))
	assert.True(t, l.IsFadeObservable(projectElementID(2)))
	assert.True(t, l.IsFadeObservable(skillElementID("tools")))
	assert.False(t, l.IsFadeObservable("projects"))
	assert.False(t, l.IsFadeObservable("nope"))

	for _, id := range l.FadeObservable() {
		assert.True(t, l.Has(id), id)
	}
}
