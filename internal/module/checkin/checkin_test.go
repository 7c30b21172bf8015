package checkin

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"team-checkin-system/config"
	"team-checkin-system/internal/global/response"
	"team-checkin-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Init()
	// 校验逻辑用固定的测试名单，与部署配置解耦
	config.Get().Roster = config.Roster{
		{Name: "alpha", Members: []string{"alice", "bob", "carol"}},
		{Name: "beta", Members: []string{"dave"}},
	}
	(&ModuleCheckin{}).Init()
	os.Exit(m.Run())
}

// 以下用例都应在访问存储之前被拒绝，database.DB 故意保持未初始化，
// 任何触达存储的路径都会直接 panic 暴露出来。

func TestSubmitCheckinMissingFields(t *testing.T) {
	cases := []CheckinRequest{
		{Team: "alpha", Type: "morning", Date: "2025-03-10"},
		{Name: "alice", Type: "morning", Date: "2025-03-10"},
		{Name: "alice", Team: "alpha", Date: "2025-03-10"},
		{Name: "alice", Team: "alpha", Type: "morning"},
		{},
	}
	for _, req := range cases {
		w := test.DoRequest(t, SubmitCheckin, req)
		test.ErrorEqual(t, response.ErrMissingFields, w)
	}
}

func TestSubmitCheckinEmptyBody(t *testing.T) {
	// 完全没有请求体也按字段缺失处理，而不是通用的参数错误
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)
	c.Request.Header.Set("Content-Type", "application/json")
	SubmitCheckin(c)
	test.ErrorEqual(t, response.ErrMissingFields, w)
}

func TestSubmitCheckinInvalidSlot(t *testing.T) {
	w := test.DoRequest(t, SubmitCheckin, CheckinRequest{
		Name: "alice", Team: "alpha", Type: "noon", Date: "2025-03-10",
	})
	require.Equal(t, 400, w.Code)
	var body response.ErrorBody
	test.DecodeJSON(t, w, &body)
	require.Equal(t, "invalid_request", body.Code)
}

func TestSubmitCheckinInvalidDate(t *testing.T) {
	for _, date := range []string{"2025/03/10", "20250310", "2025-3-10", "yesterday"} {
		w := test.DoRequest(t, SubmitCheckin, CheckinRequest{
			Name: "alice", Team: "alpha", Type: "morning", Date: date,
		})
		require.Equalf(t, 400, w.Code, "date=%s", date)
		var body response.ErrorBody
		test.DecodeJSON(t, w, &body)
		require.Equal(t, "invalid_request", body.Code)
	}
}

func TestSubmitCheckinRejectsUnknownMember(t *testing.T) {
	// 不存在的组
	w := test.DoRequest(t, SubmitCheckin, CheckinRequest{
		Name: "alice", Team: "gamma", Type: "morning", Date: "2025-03-10",
	})
	test.ErrorEqual(t, response.ErrUnknownMember, w)

	// 成员在名单里但不属于该组
	w = test.DoRequest(t, SubmitCheckin, CheckinRequest{
		Name: "dave", Team: "alpha", Type: "morning", Date: "2025-03-10",
	})
	test.ErrorEqual(t, response.ErrUnknownMember, w)
}
