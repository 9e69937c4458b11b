package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus(t *testing.T) {
	tests := []struct {
		status   ReservationStatus
		terminal bool
		message  string
	}{
		{ReservationStatusWaiting, false, "확정 대기"},
		{ReservationStatusConfirm, false, "확정"},
		{ReservationStatusCancel, true, "취소"},
		{ReservationStatusDenied, true, "거절"},
		{ReservationStatusArrived, true, "실행"},
		{ReservationStatusNoShow, true, "미실행"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.True(t, tt.status.IsValid())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.message, tt.status.Message())
		})
	}

	assert.False(t, ReservationStatus("PENDING").IsValid())
}

func TestMaskName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"김철", "김*"},
		{"김철수", "김*수"},
		{"남궁민수", "남**수"},
		{"John Smith", "J*** Smith"},
		{"Alice", "A***e"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskName(tt.name))
		})
	}
}

func TestPage(t *testing.T) {
	p := NewPage([]int{1, 2}, PageRequest{Page: 1, Size: 2}, 5)

	assert.Equal(t, 3, p.TotalPages())
	assert.Equal(t, 2, PageRequest{Page: 1, Size: 2}.Offset())

	mapped := MapPage(p, func(v int) string { return string(rune('a' + v)) })
	assert.Equal(t, []string{"b", "c"}, mapped.Content)
	assert.Equal(t, int64(5), mapped.TotalElements)

	assert.NotNil(t, NewPage[int](nil, PageRequest{Size: 10}, 0).Content)
}

func TestIdentityKind(t *testing.T) {
	kind, ok := Identity{UID: "u", Roles: Roles{RolePartner}}.Kind()
	assert.True(t, ok)
	assert.Equal(t, AccountKindPartner, kind)

	_, ok = Identity{UID: "u", Roles: Roles{RolePartner, RoleCustomer}}.Kind()
	assert.False(t, ok)

	parsed, ok := ParseAccountKind("customer")
	assert.True(t, ok)
	assert.Equal(t, AccountKindCustomer, parsed)
	assert.Len(t, NewExternalUID(), 32)
}

func TestRestaurantMaxTableVolume(t *testing.T) {
	var none *RestaurantDetail
	assert.Equal(t, 0, none.MaxTableVolume())

	r := &RestaurantDetail{Tables: []Table{{Volume: 2, Amount: 4}, {Volume: 6, Amount: 1}, {Volume: 8, Amount: 0}}}
	assert.Equal(t, 6, r.MaxTableVolume())
}
