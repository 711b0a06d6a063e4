package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		want   string
	}{
		{
			name:   "equal",
			before: "a\nb\n",
			after:  "a\nb\n",
			want:   "",
		},
		{
			name:   "changed_line",
			before: "<ul>\n<li>Old</li>\n</ul>\n",
			after:  "<ul>\n<li>New</li>\n</ul>\n",
			want:   "-<li>Old</li>\n+<li>New</li>\n",
		},
		{
			name:   "inserted_lines",
			before: "a\nc\n",
			after:  "a\nb1\nb2\nc\n",
			want:   "+b1\n+b2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff(tt.before, tt.after))
		})
	}
}
