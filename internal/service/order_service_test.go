package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/send-logistics/internal/constants"
	"github.com/send-logistics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreateSeedsActiveNode(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")

	view, err := s.order.Create(user.ID, sampleOrderInput())
	require.NoError(t, err)
	assert.Equal(t, constants.OrderStatusPending, view.Status)
	assert.Equal(t, "待取件", view.StatusText)
	assert.Regexp(t, regexp.MustCompile(`^SF\d{12}$`), view.TrackingNumber)

	detail, err := s.order.Get(view.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, detail.LogisticsNodes, 1)
	node := detail.LogisticsNodes[0]
	assert.True(t, node.IsActive)
	assert.Equal(t, constants.SeedNodeStatus, node.Status)
	assert.Equal(t, constants.SeedNodeDescription, node.Description)
	assert.Equal(t, "深圳市", node.Location)
	assert.Equal(t, view.TrackingNumber, node.TrackingNumber)
}

func TestOrderListKeywordStatusAndPaging(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")
	base := time.Now().Add(-time.Hour)
	tick := 0
	s.order.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	zhangsan := sampleOrderInput()
	zhangsan.CourierCompany = "圆通速递"
	zhangsan.ReceiverName = "张三"
	first, err := s.order.Create(user.ID, zhangsan)
	require.NoError(t, err)

	sf := sampleOrderInput()
	second, err := s.order.Create(user.ID, sf)
	require.NoError(t, err)

	result, err := s.order.List(user.ID, OrderQueryInput{Keyword: "张三"})
	require.NoError(t, err)
	require.Len(t, result.List, 1)
	assert.Equal(t, first.ID, result.List[0].ID)

	result, err = s.order.List(user.ID, OrderQueryInput{Keyword: "SF"})
	require.NoError(t, err)
	require.Len(t, result.List, 1)
	assert.Equal(t, second.ID, result.List[0].ID)

	_, err = s.order.UpdateStatus(second.ID, user.ID, OrderStatusInput{Status: constants.OrderStatusInTransit})
	require.NoError(t, err)
	result, err = s.order.List(user.ID, OrderQueryInput{Status: constants.OrderStatusInTransit})
	require.NoError(t, err)
	require.Len(t, result.List, 1)
	assert.Equal(t, "运输中", result.List[0].StatusText)

	for i := 0; i < 9; i++ {
		_, err := s.order.Create(user.ID, sampleOrderInput())
		require.NoError(t, err)
	}

	page1, err := s.order.List(user.ID, OrderQueryInput{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page1.List, 10)
	assert.EqualValues(t, 11, page1.Total)
	assert.Equal(t, 2, page1.TotalPages)

	page2, err := s.order.List(user.ID, OrderQueryInput{Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page2.List, 1)
	assert.Equal(t, first.ID, page2.List[0].ID)

	defaults, err := s.order.List(user.ID, OrderQueryInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 10, defaults.PageSize)

	_, err = s.order.List(user.ID, OrderQueryInput{Status: "lost"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestOrderStatusAnyTransition(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")
	order, err := s.order.Create(user.ID, sampleOrderInput())
	require.NoError(t, err)

	for _, status := range []string{
		constants.OrderStatusDelivered,
		constants.OrderStatusPending,
		constants.OrderStatusException,
		constants.OrderStatusInTransit,
	} {
		view, err := s.order.UpdateStatus(order.ID, user.ID, OrderStatusInput{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, view.Status)
	}

	_, err = s.order.UpdateStatus(order.ID, user.ID, OrderStatusInput{Status: "lost"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "订单状态无效", MessageOf(err))
}

func TestOrderCrossOwnerAndSoftDelete(t *testing.T) {
	s := setupServiceTest(t)
	owner := registerTestUser(t, s, "13800138000")
	stranger := registerTestUser(t, s, "13900139000")
	order, err := s.order.Create(owner.ID, sampleOrderInput())
	require.NoError(t, err)

	_, err = s.order.Get(order.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = s.order.UpdateStatus(order.ID, stranger.ID, OrderStatusInput{Status: constants.OrderStatusDelivered})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, s.order.Delete(order.ID, stranger.ID), ErrOrderNotFound)

	public, err := s.order.GetByTrackingNumber(order.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, order.ID, public.ID)

	require.NoError(t, s.order.Delete(order.ID, owner.ID))
	_, err = s.order.Get(order.ID, owner.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = s.order.GetByTrackingNumber(order.TrackingNumber)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = s.logistics.GetTrackingInfo(order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, s.order.Delete(order.ID, owner.ID), ErrOrderNotFound)

	list, err := s.order.List(owner.ID, OrderQueryInput{})
	require.NoError(t, err)
	assert.Empty(t, list.List)
	assert.EqualValues(t, 0, list.Total)
}

func TestOrderCreateValidation(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")

	input := sampleOrderInput()
	input.ReceiverPhone = "123"
	_, err := s.order.Create(user.ID, input)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "收件人电话格式不正确", MessageOf(err))

	input = sampleOrderInput()
	input.CourierCompany = ""
	_, err = s.order.Create(user.ID, input)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "快递公司不能为空", MessageOf(err))
}

func TestOrderCreateRollsBackWhenSeedNodeFails(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")
	require.NoError(t, s.db.Migrator().DropTable(&models.LogisticsNode{}))

	_, err := s.order.Create(user.ID, sampleOrderInput())
	require.Error(t, err)

	var count int64
	require.NoError(t, s.db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderCreateRetriesOnTrackingNumberConflict(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")
	existing, err := s.order.Create(user.ID, sampleOrderInput())
	require.NoError(t, err)

	candidates := []string{existing.TrackingNumber, "SF260101000001"}
	calls := 0
	s.order.generate = func(string, time.Time) string {
		candidate := candidates[calls]
		calls++
		return candidate
	}

	view, err := s.order.Create(user.ID, sampleOrderInput())
	require.NoError(t, err)
	assert.Equal(t, "SF260101000001", view.TrackingNumber)
	assert.Equal(t, 2, calls)
	require.Len(t, view.LogisticsNodes, 1)
	assert.Equal(t, "SF260101000001", view.LogisticsNodes[0].TrackingNumber)

	var nodes int64
	require.NoError(t, s.db.Model(&models.LogisticsNode{}).Count(&nodes).Error)
	assert.EqualValues(t, 2, nodes)
}

func TestOrderCreateGivesUpAfterRepeatedConflicts(t *testing.T) {
	s := setupServiceTest(t)
	user := registerTestUser(t, s, "13800138000")
	existing, err := s.order.Create(user.ID, sampleOrderInput())
	require.NoError(t, err)

	calls := 0
	s.order.generate = func(string, time.Time) string {
		calls++
		return existing.TrackingNumber
	}

	_, err = s.order.Create(user.ID, sampleOrderInput())
	require.ErrorIs(t, err, ErrOperationFailed)
	assert.ErrorIs(t, err, ErrTrackingNumberBusy)
	assert.Equal(t, trackingGenerateRounds, calls)
}
