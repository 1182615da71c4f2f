package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/send-logistics/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCity(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{address: "广东省深圳市南山区科技园", want: "深圳市"},
		{address: "北京市朝阳区建国路", want: "北京市"},
		{address: "黑龙江省齐齐哈尔市龙沙区", want: "齐齐哈尔市"},
		{address: "内蒙古自治区呼和浩特市新城区", want: "区呼和浩特市"},
		{address: "新疆维吾尔自治区某某县某某镇某某村", want: "新疆维吾尔自治区某某"},
		{address: "某某镇", want: "某某镇"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, extractCity(tc.address), tc.address)
	}
}

func TestTrackingPrefix(t *testing.T) {
	cases := map[string]string{
		"顺丰速运": "SF",
		"圆通速递": "YT",
		"中通快递": "ZTO",
		"韵达快递": "YD",
		"申通快递": "STO",
		"京东物流": "EX",
	}
	for company, want := range cases {
		assert.Equal(t, want, trackingPrefix(company), company)
	}

	number := generateTrackingNumber("中通快递", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(number, "ZTO260309"), number)
	assert.Len(t, number, len("ZTO")+trackingSuffixLength)
}

func TestNewPageResult(t *testing.T) {
	result := newPageResult[int](nil, 11, 2, 10)
	assert.Equal(t, 2, result.TotalPages)
	assert.NotNil(t, result.List)

	empty := newPageResult([]int{}, 0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestAreaServiceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"440000":{"name":"广东省"}}`))
	}))
	defer server.Close()

	svc := NewAreaService(config.AreaConfig{URL: server.URL, TimeoutMS: 1000})
	data, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, data, "440000")
}

func TestAreaServiceFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewAreaService(config.AreaConfig{URL: server.URL})
	_, err := svc.Fetch(context.Background())
	require.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "获取地区数据失败: unexpected status 502", MessageOf(err))
}
