package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Review is a customer's write-up of a store they have booked.
type Review struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerUID  string
	CustomerName string
	StoreID      uuid.UUID
	Storename    string
	PartnerUID   string // Owner of the reviewed store.
	Title        string
	Text         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MaskName hides the writer's name for public listings.
// Names shorter than three characters lose their last character, latin names keep
// the first letter of the first word and the remaining words, anything else keeps
// only the first and last characters.
func MaskName(name string) string {
	runes := []rune(name)
	n := len(runes)
	if n == 0 {
		return name
	}
	if n < 3 {
		return string(runes[:n-1]) + "*"
	}

	if isLatin(runes[0]) {
		if idx := strings.IndexRune(name, ' '); idx > 0 {
			first := name[:idx]
			firstLen := utf8.RuneCountInString(first)

			return string([]rune(first)[:1]) + strings.Repeat("*", firstLen-1) + name[idx:]
		}
	}

	return string(runes[0]) + strings.Repeat("*", n-2) + string(runes[n-1])
}

func isLatin(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
