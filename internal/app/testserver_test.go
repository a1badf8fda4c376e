package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"onlyfame_backend/internal/config"
	"onlyfame_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testServer - полный роутер поверх sqlite в памяти
type testServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testutil.NewTestConfig(t)
	db := testutil.OpenDB(t, cfg)

	router, err := SetupRouter(cfg, db)
	require.NoError(t, err, "Не удалось собрать роутер")

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	// Редиректы проверяем сами, клиент за ними не ходит
	client := server.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &testServer{Server: server, DB: db, Config: cfg, client: client}
}

// SendRequest отправляет JSON и возвращает ответ вместе с телом
func (ts *testServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Ошибка кодирования JSON для запроса")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "Ошибка создания HTTP-запроса")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.client.Do(req)
	require.NoError(t, err, "Ошибка отправки HTTP-запроса")
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err, "Ошибка чтения тела ответа")

	return res, string(resBody)
}

// register регистрирует пользователя через API и возвращает токен и id
func (ts *testServer) register(t *testing.T, role, fullName string) (token, userID, email string) {
	t.Helper()

	email = testutil.UniqueEmail(role)
	res, body := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":     email,
		"password":  testutil.DefaultPassword,
		"full_name": fullName,
		"role":      role,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp.Token, resp.User.ID, email
}

func decode(t *testing.T, body string, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out), body)
}
