package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout_Valid(t *testing.T) {
	l := DefaultLayout()
	require.NoError(t, l.Validate())
	assert.Len(t, l.Slots, 13)
	assert.Len(t, l.Pieces, 13)
}

func TestParseLayout_BadYAML(t *testing.T) {
	_, err := ParseLayout([]byte("slots: [unclosed"))
	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
		want   string
	}{
		{
			name:   "missing slot",
			mutate: func(l *Layout) { l.Slots = l.Slots[:12] },
			want:   "12 slots",
		},
		{
			name:   "missing piece",
			mutate: func(l *Layout) { l.Pieces = l.Pieces[:12] },
			want:   "12 pieces",
		},
		{
			name:   "duplicate slot id",
			mutate: func(l *Layout) { l.Slots[1].ID = l.Slots[0].ID },
			want:   "duplicate slot id",
		},
		{
			name: "duplicate slot position",
			mutate: func(l *Layout) {
				l.Slots[1].X = l.Slots[0].X
				l.Slots[1].Z = l.Slots[0].Z
			},
			want: "share position",
		},
		{
			name:   "duplicate piece id",
			mutate: func(l *Layout) { l.Pieces[1].ID = l.Pieces[0].ID },
			want:   "duplicate piece id",
		},
		{
			name:   "broken color census",
			mutate: func(l *Layout) { l.Pieces[0].Color = Yellow }, // orange loses one, yellow gains one
			want:   "want 3",
		},
		{
			name:   "two of one shape in a color",
			mutate: func(l *Layout) { l.Pieces[0].Shape = Square }, // orange: two squares, no round
			want:   "want 1",
		},
		{
			name: "red piece not round",
			mutate: func(l *Layout) {
				for i := range l.Pieces {
					if l.Pieces[i].Color == Red {
						l.Pieces[i].Shape = Square
					}
				}
			},
			want: "red",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(&l)
			err := l.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
