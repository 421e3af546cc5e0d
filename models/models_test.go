package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomTransitions(t *testing.T) {
	cases := []struct {
		from, to RoomStatus
		ok       bool
	}{
		{RoomFree, RoomOccupied, true},
		{RoomOccupied, RoomHousekeeping, true},
		{RoomHousekeeping, RoomFree, true},
		{RoomFree, RoomMaintenance, true},
		{RoomHousekeeping, RoomMaintenance, true},
		{RoomMaintenance, RoomFree, true},
		{RoomOccupied, RoomFree, false},
		{RoomOccupied, RoomMaintenance, false},
		{RoomMaintenance, RoomOccupied, false},
		{RoomHousekeeping, RoomOccupied, false},
		{RoomFree, RoomFree, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPredecessorsOf(t *testing.T) {
	assert.ElementsMatch(t, []RoomStatus{RoomFree, RoomHousekeeping}, PredecessorsOf(RoomMaintenance))
	assert.ElementsMatch(t, []RoomStatus{RoomHousekeeping, RoomMaintenance}, PredecessorsOf(RoomFree))
	assert.ElementsMatch(t, []RoomStatus{RoomFree}, PredecessorsOf(RoomOccupied))
}

func TestRoomStatusValid(t *testing.T) {
	assert.True(t, RoomHousekeeping.Valid())
	assert.False(t, RoomStatus("cleaning").Valid())
}

func TestStayRoomIDsKeepsOrder(t *testing.T) {
	s := Stay{Rooms: []StayRoom{{RoomID: 7}, {RoomID: 3}, {RoomID: 12}}}
	assert.Equal(t, []uint{7, 3, 12}, s.RoomIDs())
}
