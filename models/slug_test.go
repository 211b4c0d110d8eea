package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ceylon Black Tea!":     "ceylon-black-tea",
		"Spiced  Ceylon   Chai": "spiced-ceylon-chai",
		"100% Kithul Coffee":    "100-kithul-coffee",
		"--Already-Sluggy--":    "already-sluggy",
		"ODD***chars###here":    "odd-chars-here",
	}
	for name, want := range cases {
		assert.Equal(t, want, Slugify(name), "Slugify(%q)", name)
	}
}

func TestSlugifyIsDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Ceylon Black Tea!"), Slugify("Ceylon Black Tea!"))
}

func TestValidPrice(t *testing.T) {
	for _, ok := range []string{"12.99", "0.50", "100", "25.98", "3.5"} {
		assert.True(t, ValidPrice(ok), ok)
	}
	for _, bad := range []string{"", "-1.00", "12.999", "1,99", "abc", "12."} {
		assert.False(t, ValidPrice(bad), bad)
	}
}
