package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameZone(t *testing.T) {
	instant := time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC)
	kst := time.FixedZone("KST", 9*60*60)

	tests := []struct {
		name    string
		setting string
		loc     *time.Location
		want    bool
	}{
		{name: "same name", setting: "KST", loc: kst, want: true},
		{name: "utc", setting: "UTC", loc: time.UTC, want: true},
		{name: "different offset", setting: "UTC", loc: kst, want: false},
		{name: "unknown server zone", setting: "Not/AZone", loc: time.UTC, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sameZone(tt.setting, tt.loc, instant))
		})
	}
}
