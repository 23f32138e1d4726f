package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		prefix  string
		want    string
		wantErr bool
	}{
		{name: "leading zero gets country prefix", in: "0821234567", want: "+27821234567"},
		{name: "international with punctuation", in: "+1 555-0100", want: "+15550100"},
		{name: "already prefixed unchanged", in: "+27821234567", want: "+27821234567"},
		{name: "bare digits get a plus", in: "15550100", want: "+15550100"},
		{name: "parens and dashes", in: "(082) 123-4567", want: "+27821234567"},
		{name: "custom prefix", in: "0712345678", prefix: "+44", want: "+44712345678"},
		{name: "empty", in: "", wantErr: true},
		{name: "punctuation only", in: "- () ", wantErr: true},
		{name: "lone plus", in: "+", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.in, tt.prefix)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoDigits)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeepLink(t *testing.T) {
	link := DeepLink("+27821234567", "Hi Jane,\nGreat job!")
	assert.Equal(t, "https://wa.me/27821234567?text=Hi+Jane%2C%0AGreat+job%21", link)
}
