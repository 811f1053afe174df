package furnace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"I hit F12 today!", "F12", true},
		{"f5 finally", "F5", true},
		{"FC3 unlocked", "FC3", true},
		{"fc10", "FC10", true},
		{"FC11", "", false}, // crystal levels cap at 10
		{"F35", "", false},  // furnace levels cap at 30
		{"F0", "", false},
		{"furnace 7", "F7", true},
		{"Furnace12", "F12", true},
		{"FURNACE 31", "", false},
		{"random text", "", false},
		{"", "", false},
		{"my wifi is 5F", "", false},
		{"F12 and FC3", "F12", true}, // first pattern wins
	}

	for _, tt := range tests {
		got, ok := Parse(tt.text)
		assert.Equal(t, tt.ok, ok, "text %q", tt.text)
		assert.Equal(t, tt.want, got, "text %q", tt.text)
	}
}
