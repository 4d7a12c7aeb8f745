package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomsJSON = `{"rooms":[
	{"id":1,"number":"101","building":"A","code":"A101","area":20,"price":"3500000","status":"available",
	 "amenities":[],"description":"","createdAt":"2025-01-01T00:00:00Z","updatedAt":"2025-01-01T00:00:00Z"},
	{"id":2,"number":"102","building":"A","code":"A102","area":18,"price":"3000000","status":"occupied",
	 "amenities":[],"description":"","tenant":"Nguyễn Văn A","tenantPhone":"0901",
	 "contractStartDate":"2025-01-14","contractEndDate":"2026-01-14","deposit":"2000000","notificationSent":false,
	 "createdAt":"2025-01-01T00:00:00Z","updatedAt":"2025-01-01T00:00:00Z"}
],"buildings":["A"],"total":2}`

func fakeAPI(t *testing.T, extra map[string]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		key := r.Method + " " + r.URL.Path
		if key == "GET /api/v1/rooms" {
			_, _ = w.Write([]byte(roomsJSON))
			return
		}
		body, ok := extra[key]
		if !ok {
			t.Errorf("unexpected request %s", key)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if strings.HasPrefix(body, "!") {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"code":409,"message":"` + body[1:] + `"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
}

func run(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--api", server.URL, "--retries", "0"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRoomsList_Filter(t *testing.T) {
	server := fakeAPI(t, nil)
	defer server.Close()

	out, err := run(t, server, "rooms", "list", "--status", "occupied")
	require.NoError(t, err)
	assert.Contains(t, out, "A102")
	assert.Contains(t, out, "Nguyễn Văn A")
	assert.Contains(t, out, "14/01/2026")
	assert.NotContains(t, out, "A101")
	assert.Contains(t, out, "1 / 2 rooms")
}

func TestRoomsList_InvalidStatus(t *testing.T) {
	server := fakeAPI(t, nil)
	defer server.Close()

	_, err := run(t, server, "rooms", "list", "--status", "rented")
	assert.Error(t, err)
}

func TestRoomsDelete_Conflict(t *testing.T) {
	server := fakeAPI(t, map[string]string{"DELETE /api/v1/rooms/2": "!phòng đang có người thuê"})
	defer server.Close()

	_, err := run(t, server, "rooms", "delete", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phòng đang có người thuê")
}

func TestNotificationsList(t *testing.T) {
	server := fakeAPI(t, nil)
	defer server.Close()

	out, err := run(t, server, "notifications", "list", "--json")
	require.NoError(t, err)
	// Договор до 2026-01-14: уведомление зависит от текущей даты, проверяем только формат
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "[") || strings.TrimSpace(out) == "null")
}

func TestContractCreate_RequiresEndOrMonths(t *testing.T) {
	server := fakeAPI(t, nil)
	defer server.Close()

	_, err := run(t, server, "contract", "create", "1", "--tenant", "A", "--phone", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--end or --months")
}

func TestRemind_PrintsReport(t *testing.T) {
	server := fakeAPI(t, map[string]string{
		"POST /api/v1/notifications/reminders": `{"sent":[2],"skipped":[],"failed":[{"roomId":3,"reason":"no contact"}]}`,
	})
	defer server.Close()

	out, err := run(t, server, "notifications", "remind")
	require.NoError(t, err)
	assert.Contains(t, out, "sent: 1 [2]")
	assert.Contains(t, out, "room 3: no contact")
}
