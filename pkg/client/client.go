// Package client 是打卡服务 HTTP 接口的 Go 客户端。
// 时钟同步是一次性的：启动时调用 SyncTime 计算与服务器的偏移，
// 之后所有本地时间读取都套用该偏移，不做漂移重同步。
package client

import (
	"context"
	"fmt"
	"time"

	"team-checkin-system/pkg/window"

	"github.com/go-resty/resty/v2"
)

// Record 一条打卡记录的线上形态
type Record struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// APIError 服务端返回的结构化错误
type APIError struct {
	StatusCode int    `json:"-"`
	Kind       string `json:"code"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Kind, e.Message)
}

type Client struct {
	http   *resty.Client
	offset time.Duration
}

// New 创建客户端，baseURL 包含接口前缀，如 http://localhost:3007/api
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
	}
}

type timeResponse struct {
	Timestamp int64 `json:"timestamp"`
}

// SyncTime 做一次时钟同步往返
// offset = (服务器时间戳 + 半程延迟) − 本地收到响应的时刻
func (c *Client) SyncTime(ctx context.Context) error {
	var body timeResponse
	start := time.Now()
	resp, err := c.http.R().SetContext(ctx).SetResult(&body).Get("/time")
	received := time.Now()
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Kind: "internal", Message: resp.String()}
	}

	latency := received.Sub(start) / 2
	server := time.UnixMilli(body.Timestamp).Add(latency)
	c.offset = server.Sub(received)
	return nil
}

// Offset 当前套用的时钟偏移
func (c *Client) Offset() time.Duration {
	return c.offset
}

// Now 偏移修正后的当前时刻
func (c *Client) Now() time.Time {
	return time.Now().Add(c.offset)
}

// Window 按修正后的时钟推导当前打卡窗口
func (c *Client) Window() window.Window {
	return window.Derive(time.Now(), c.offset)
}

// RecentStats 拉取最近 7 天的打卡记录
func (c *Client) RecentStats(ctx context.Context) ([]Record, error) {
	var records []Record
	apiErr := &APIError{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&records).
		SetError(apiErr).
		Get("/stats")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		return nil, apiErr
	}
	return records, nil
}

type checkinRequest struct {
	Name string `json:"name"`
	Team string `json:"team"`
	Type string `json:"type"`
	Date string `json:"date"`
}

type checkinResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// CheckIn 提交一条打卡，返回服务端分配的记录 ID
// 失败直接返回 *APIError，不做自动重试，由调用方决定是否重新触发
func (c *Client) CheckIn(ctx context.Context, name, team, slot, date string) (uint, error) {
	var result checkinResponse
	apiErr := &APIError{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(checkinRequest{Name: name, Team: team, Type: slot, Date: date}).
		SetResult(&result).
		SetError(apiErr).
		Post("/checkin")
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		return 0, apiErr
	}
	return result.ID, nil
}
