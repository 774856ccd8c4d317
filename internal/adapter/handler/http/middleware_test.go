package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/MikeRez0/lunchorder/internal/core/port"
	"github.com/MikeRez0/lunchorder/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAuthCheck(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		header    string
		mock      func(ts *mock.MockTokenService)
		expStatus int
	}{
		{
			name:      "no header",
			mock:      func(ts *mock.MockTokenService) {},
			expStatus: http.StatusUnauthorized,
		},
		{
			name:      "bad format",
			header:    "Bearer a b",
			mock:      func(ts *mock.MockTokenService) {},
			expStatus: http.StatusUnauthorized,
		},
		{
			name:      "bad type",
			header:    "Basic abc",
			mock:      func(ts *mock.MockTokenService) {},
			expStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer abc",
			mock: func(ts *mock.MockTokenService) {
				ts.EXPECT().VerifyToken("abc").Return(nil, domain.ErrInvalidToken)
			},
			expStatus: http.StatusUnauthorized,
		},
		{
			name:   "wrong role",
			header: "Bearer abc",
			mock: func(ts *mock.MockTokenService) {
				ts.EXPECT().VerifyToken("abc").Return(&port.TokenPayload{Role: "guest"}, nil)
			},
			expStatus: http.StatusUnauthorized,
		},
		{
			name:   "operator",
			header: "Bearer abc",
			mock: func(ts *mock.MockTokenService) {
				ts.EXPECT().VerifyToken("abc").Return(&port.TokenPayload{Role: port.RoleOperator}, nil)
			},
			expStatus: http.StatusNoContent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(ts)

			r := gin.New()
			r.GET("/", authCheck(NewHandler(zap.NewNop()), ts), func(ctx *gin.Context) {
				ctx.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if test.header != "" {
				req.Header.Set(authHeaderKey, test.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, test.expStatus, w.Code)
		})
	}
}
