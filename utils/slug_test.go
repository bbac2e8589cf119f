package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mountain View Hotel", "mountain-view-hotel"},
		{"Hotel Taj, Agra!", "hotel-taj-agra"},
		{"  Padded  Name  ", "padded-name"},
		{"already-a-slug", "already-a-slug"},
		{"Crown & Castle", "crown-castle"},
		{"UPPER", "upper"},
		{"room #42", "room-42"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestNextSlug(t *testing.T) {
	assert.Equal(t, "base", NextSlug("base", 0))
	assert.Equal(t, "base-1", NextSlug("base", 1))
	assert.Equal(t, "base-12", NextSlug("base", 12))
}
