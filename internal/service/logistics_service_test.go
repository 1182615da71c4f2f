package service

import (
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeFlipsActiveNode(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")
	order, err := s.order.Create(user.ID, sampleOrderInput())
	require.NoError(t, err)

	node, err := s.logistics.AddNode(AddNodeInput{
		OrderID:     order.ID,
		Time:        time.Now().Add(time.Hour).Format(time.RFC3339),
		Location:    "深圳市",
		Status:      "运输中",
		Description: "快件已到达深圳集散中心",
	})
	require.NoError(t, err)
	assert.True(t, node.IsActive)
	assert.Equal(t, order.TrackingNumber, node.TrackingNumber)

	info, err := s.logistics.GetTrackingInfo(order.ID)
	require.NoError(t, err)
	require.Len(t, info.Nodes, 2)
	assert.Equal(t, "待取件", info.StatusText)
	assert.Equal(t, node.ID, info.Nodes[0].ID)
	active := 0
	for _, n := range info.Nodes {
		if n.IsActive {
			active++
			assert.Equal(t, node.ID, n.ID)
		}
	}
	assert.Equal(t, 1, active)
}

func TestAddNodeInactiveKeepsCurrentNode(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")
	order, err := s.order.Create(user.ID, sampleOrderInput())
	require.NoError(t, err)

	before := time.Now()
	node, err := s.logistics.AddNode(AddNodeInput{
		OrderID:  order.ID,
		Status:   "备注",
		IsActive: pointer.ToBool(false),
	})
	require.NoError(t, err)
	assert.False(t, node.IsActive)
	assert.False(t, node.Time.Before(before))

	info, err := s.logistics.GetTrackingInfo(order.ID)
	require.NoError(t, err)
	active := 0
	for _, n := range info.Nodes {
		if n.IsActive {
			active++
			assert.NotEqual(t, node.ID, n.ID)
		}
	}
	assert.Equal(t, 1, active)
}

func TestAddNodeErrors(t *testing.T) {
	s := setupServiceTest(t)

	_, err := s.logistics.AddNode(AddNodeInput{OrderID: 999, Status: "运输中"})
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = s.logistics.AddNode(AddNodeInput{OrderID: 1})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "物流状态不能为空", MessageOf(err))

	_, err = s.logistics.AddNode(AddNodeInput{OrderID: 1, Status: "运输中", Time: "昨天"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "物流时间格式不正确", MessageOf(err))

	_, err = s.logistics.GetTrackingInfo(999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAddNodeOrdersMixedOffsetsByInstant(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")
	order, err := s.order.Create(user.ID, sampleOrderInput())
	require.NoError(t, err)

	_, err = s.logistics.AddNode(AddNodeInput{
		OrderID: order.ID,
		Time:    "2030-01-01T10:00:00+09:00",
		Status:  "earlier",
	})
	require.NoError(t, err)
	_, err = s.logistics.AddNode(AddNodeInput{
		OrderID: order.ID,
		Time:    "2030-01-01T05:00:00Z",
		Status:  "later",
	})
	require.NoError(t, err)

	info, err := s.logistics.GetTrackingInfo(order.ID)
	require.NoError(t, err)
	require.Len(t, info.Nodes, 3)
	assert.Equal(t, "later", info.Nodes[0].Status)
	assert.Equal(t, "earlier", info.Nodes[1].Status)
	assert.Equal(t, "待取件", info.Nodes[2].Status)
}

func TestParseEventTime(t *testing.T) {
	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := parseEventTime("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = parseEventTime("2026-03-09T10:30:00", fallback)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 3, 9, 10, 30, 0, 0, time.Local)), got.String())
	assert.Equal(t, time.UTC, got.Location())

	got, err = parseEventTime("2026-03-09T10:30:00+08:00", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 9, 2, 30, 0, 0, time.UTC), got)
}
