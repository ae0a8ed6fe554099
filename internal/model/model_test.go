package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeID(t *testing.T) {
	tests := []struct {
		id   TypeID
		name string
		pkg  string
	}{
		{"example.com/app.Tagged", "Tagged", "example.com/app"},
		{"github.com/x/y/markers.MarkerA", "MarkerA", "github.com/x/y/markers"},
		{"int", "int", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.name, tt.id.Name())
			assert.Equal(t, tt.pkg, tt.id.Package())
		})
	}
}

func TestSpanValid(t *testing.T) {
	assert.False(t, Span{}.Valid())
	assert.False(t, Span{Pos: 5, End: 5}.Valid())
	assert.True(t, Span{Pos: 5, End: 9}.Valid())
}

func TestLocationAnchor(t *testing.T) {
	assert.Equal(t, Location{NamePos: 3, DeclPos: 1}.Anchor(), Location{NamePos: 3}.Anchor())
	assert.Equal(t, Location{DeclPos: 1}.Anchor(), Location{DeclPos: 1, NamePos: 0}.Anchor())
}
