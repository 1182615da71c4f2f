package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/send-logistics/internal/config"
	"github.com/send-logistics/internal/logger"
)

const (
	defaultAreaTimeout  = 5 * time.Second
	areaMaxResponseSize = 8 << 20
)

// AreaService 省市区数据代理
type AreaService struct {
	url    string
	client *http.Client
}

// NewAreaService 创建省市区数据代理
func NewAreaService(cfg config.AreaConfig) *AreaService {
	timeout := defaultAreaTimeout
	if cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = config.DefaultAreaURL
	}
	return &AreaService{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch 拉取上游省市区 JSON，失败时不重试
func (s *AreaService) Fetch(ctx context.Context) (map[string]interface{}, error) {
	data, err := s.fetch(ctx)
	if err != nil {
		logger.Warnw("area_fetch_failed", "url", s.url, "error", err)
		return nil, newBizError(ErrOperationFailed, "获取地区数据失败: "+err.Error(), err)
	}
	return data, nil
}

func (s *AreaService) fetch(ctx context.Context) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var data map[string]interface{}
	if err := json.NewDecoder(io.LimitReader(resp.Body, areaMaxResponseSize)).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}
