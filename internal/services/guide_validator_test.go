package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosecen/qiongyou-travel-guide/internal/models/request_models"
	"github.com/rosecen/qiongyou-travel-guide/pkg/utils"
)

func decodeGuideRequest(t *testing.T, body string) request_models.GenerateGuideRequest {
	t.Helper()
	var req request_models.GenerateGuideRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestValidateGuideRequest(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid request",
			body: `{"city":"北京","budget":900,"days":3,"style":"foodie"}`,
		},
		{
			name: "numeric strings accepted",
			body: `{"city":"北京","budget":"900","days":"3","style":"foodie"}`,
		},
		{
			name:    "missing city",
			body:    `{"budget":900,"days":3,"style":"foodie"}`,
			wantErr: "请填写完整的旅行信息",
		},
		{
			name:    "missing budget",
			body:    `{"city":"北京","days":3,"style":"foodie"}`,
			wantErr: "请填写完整的旅行信息",
		},
		{
			name:    "missing days",
			body:    `{"city":"北京","budget":900,"style":"foodie"}`,
			wantErr: "请填写完整的旅行信息",
		},
		{
			name:    "missing style",
			body:    `{"city":"北京","budget":900,"days":3}`,
			wantErr: "请填写完整的旅行信息",
		},
		{
			name:    "zero days rejected",
			body:    `{"city":"北京","budget":900,"days":0,"style":"foodie"}`,
			wantErr: "旅游天数请设置在1-30天之间",
		},
		{
			name:    "31 days rejected",
			body:    `{"city":"北京","budget":900,"days":31,"style":"foodie"}`,
			wantErr: "旅游天数请设置在1-30天之间",
		},
		{
			name: "one day accepted",
			body: `{"city":"北京","budget":900,"days":1,"style":"foodie"}`,
		},
		{
			name: "30 days accepted",
			body: `{"city":"北京","budget":900,"days":30,"style":"foodie"}`,
		},
		{
			name:    "non-numeric days rejected",
			body:    `{"city":"北京","budget":900,"days":"abc","style":"foodie"}`,
			wantErr: "旅游天数请设置在1-30天之间",
		},
		{
			name:    "budget 99 rejected",
			body:    `{"city":"北京","budget":99,"days":3,"style":"foodie"}`,
			wantErr: "预算至少需要100元",
		},
		{
			name: "budget 100 accepted",
			body: `{"city":"北京","budget":100,"days":3,"style":"foodie"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validateGuideRequest(decodeGuideRequest(t, tc.body))
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var vErr *utils.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tc.wantErr, vErr.Message)
		})
	}
}

func TestValidateGuideRequestParsesInput(t *testing.T) {
	req := decodeGuideRequest(t, `{"city":" 北京 ","budget":"900","days":"3","style":"foodie"}`)

	input, err := validateGuideRequest(req)
	require.NoError(t, err)
	require.Equal(t, "北京", input.City)
	require.Equal(t, 900, input.Budget)
	require.Equal(t, 3, input.Days)
	require.Equal(t, "foodie", input.Style)
}
