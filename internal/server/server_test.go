package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/config"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/internal/service"
	"github.com/sefazor/ttravel-backend/internal/session"
	"github.com/sefazor/ttravel-backend/pkg/email"
	"github.com/sefazor/ttravel-backend/pkg/events"
	"github.com/sefazor/ttravel-backend/pkg/password"
	"github.com/sefazor/ttravel-backend/pkg/qrcode"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const cookieName = "test.sid"

type testServer struct {
	app   *fiber.App
	store *repository.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	log := zap.NewNop()

	store := repository.NewMemoryStore()
	require.NoError(t, store.Users.Create(ctx, &models.User{Username: "admin", Password: "admin123"}))

	cfg := &config.Config{
		CORSOrigins: "http://localhost:5173",
		BodyLimitMB: 1,
		Session:     config.SessionConfig{CookieName: cookieName},
	}

	v := utils.NewValidator()
	hasher := password.Plaintext{}
	sessions := session.NewMemoryStore(session.DefaultTTL)
	mailer := email.NoopMailer{}
	publisher := events.NoopPublisher{}

	svc := Services{
		Auth:        service.NewAuthService(store.Users, sessions, hasher, v, log),
		User:        service.NewUserService(store.Users, hasher, v, log),
		Destination: service.NewDestinationService(store.Destinations, v, log),
		Package:     service.NewPackageService(store.Packages, qrcode.NewQRService(), v, log),
		Content:     service.NewContentService(store.Content, v, log),
		Contact:     service.NewContactService(store.Contacts, store.Content, mailer, publisher, v, log),
		Newsletter:  service.NewNewsletterService(store.Newsletter, store.Content, mailer, publisher, v, log),
		Gallery:     service.NewGalleryService(store.Gallery, nil, publisher, v, log),
		Stats:       service.NewStatsService(store.Contacts, store.Newsletter),
	}

	return &testServer{app: New(cfg, svc, log), store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, cookie string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func (s *testServer) login(t *testing.T, username, pass string) string {
	t.Helper()
	resp, _ := s.do(t, http.MethodPost, "/api/auth/login", fiber.Map{"username": username, "password": pass}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			return c.Value
		}
	}
	t.Fatal("login did not set a session cookie")
	return ""
}

func decodeMap(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func decodeList(t *testing.T, raw []byte) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func destinationBody(name string, typ models.DestinationType) fiber.Map {
	return fiber.Map{
		"name":     name,
		"type":     typ,
		"imageUrl": "https://example.com/" + name + ".jpg",
		"formUrl":  "https://forms.example.com/" + name,
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeMap(t, raw)["status"])
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	_, raw := s.do(t, http.MethodGet, "/api/auth/check", nil, "")
	assert.Equal(t, false, decodeMap(t, raw)["authenticated"])

	resp, raw := s.do(t, http.MethodPost, "/api/auth/login", fiber.Map{"username": "admin", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeMap(t, raw)["message"])
	assert.Empty(t, resp.Cookies())

	resp, raw = s.do(t, http.MethodPost, "/api/auth/login", fiber.Map{"username": "ghost", "password": "admin123"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeMap(t, raw)["message"])

	resp, _ = s.do(t, http.MethodPost, "/api/auth/login", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	token := s.login(t, "admin", "admin123")

	_, raw = s.do(t, http.MethodGet, "/api/auth/check", nil, token)
	body := decodeMap(t, raw)
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, "admin", body["username"])

	resp, raw = s.do(t, http.MethodPost, "/api/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logout successful", decodeMap(t, raw)["message"])

	_, raw = s.do(t, http.MethodGet, "/api/auth/check", nil, token)
	assert.Equal(t, false, decodeMap(t, raw)["authenticated"])

	resp, _ = s.do(t, http.MethodGet, "/api/admin/stats", nil, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	seeded := models.Destination{Name: "Goa", Type: models.DestinationDomestic, ImageURL: "x", FormURL: "y", IsActive: true}
	require.NoError(t, s.store.Destinations.Create(ctx, &seeded))

	calls := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/admin/destinations", nil},
		{http.MethodPost, "/api/admin/destinations", destinationBody("Ooty", models.DestinationDomestic)},
		{http.MethodPut, "/api/admin/destinations/" + seeded.ID, fiber.Map{"name": "Hacked"}},
		{http.MethodDelete, "/api/admin/destinations/" + seeded.ID, nil},
		{http.MethodPut, "/api/admin/content", []fiber.Map{{"key": "site.name", "value": "Hacked"}}},
		{http.MethodGet, "/api/admin/contact-submissions", nil},
		{http.MethodPut, "/api/admin/change-password", fiber.Map{"currentPassword": "admin123", "newPassword": "hacked1"}},
		{http.MethodGet, "/api/admin/stats", nil},
		{http.MethodGet, "/api/admin/gallery", nil},
	}

	for _, call := range calls {
		resp, raw := s.do(t, call.method, call.path, call.body, "forged-token")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", call.method, call.path)
		assert.Equal(t, "Authentication required", decodeMap(t, raw)["message"])
	}

	all, err := s.store.Destinations.List(ctx, models.DestinationFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Goa", all[0].Name)
	assert.True(t, all[0].IsActive)

	content, err := s.store.Content.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, content)

	admin, err := s.store.Users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin123", admin.Password)
}

func TestDestinationEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	resp, raw := s.do(t, http.MethodPost, "/api/admin/destinations", destinationBody("Goa", models.DestinationDomestic), token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	created := decodeMap(t, raw)
	id := created["id"].(string)
	assert.Equal(t, models.DefaultDestinationIcon, created["icon"])
	assert.Equal(t, true, created["isActive"])

	_, raw = s.do(t, http.MethodPost, "/api/admin/destinations", destinationBody("Paris", models.DestinationInternational), token)
	require.NotEmpty(t, decodeMap(t, raw)["id"])

	resp, raw = s.do(t, http.MethodPut, "/api/admin/destinations/"+id, fiber.Map{"name": "North Goa"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeMap(t, raw)
	assert.Equal(t, "North Goa", updated["name"])
	assert.Equal(t, "https://forms.example.com/Goa", updated["formUrl"])

	_, raw = s.do(t, http.MethodGet, "/api/destinations/domestic", nil, "")
	domestic := decodeList(t, raw)
	require.Len(t, domestic, 1)
	assert.Equal(t, "North Goa", domestic[0]["name"])

	resp, raw = s.do(t, http.MethodGet, "/api/destinations/lunar", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid destination type", decodeMap(t, raw)["message"])

	resp, raw = s.do(t, http.MethodDelete, "/api/admin/destinations/"+id, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Destination deleted successfully", decodeMap(t, raw)["message"])

	_, raw = s.do(t, http.MethodGet, "/api/destinations", nil, "")
	public := decodeList(t, raw)
	require.Len(t, public, 1)
	assert.Equal(t, "Paris", public[0]["name"])

	_, raw = s.do(t, http.MethodGet, "/api/admin/destinations?includeInactive=true", nil, token)
	assert.Len(t, decodeList(t, raw), 2)

	resp, raw = s.do(t, http.MethodGet, "/api/admin/destinations/"+id, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decodeMap(t, raw)["isActive"])

	resp, raw = s.do(t, http.MethodPut, "/api/admin/destinations/missing", fiber.Map{"name": "x"}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Destination not found", decodeMap(t, raw)["message"])

	resp, _ = s.do(t, http.MethodDelete, "/api/admin/destinations/missing", nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidationErrors(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	resp, raw := s.do(t, http.MethodPost, "/api/admin/destinations", fiber.Map{"name": "Goa", "type": "space"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, raw)
	assert.Equal(t, "Invalid destination data", body["message"])
	assert.Equal(t, false, body["success"])
	assert.Len(t, body["errors"], 3)

	withExtra := destinationBody("Goa", models.DestinationDomestic)
	withExtra["rating"] = 5
	resp, raw = s.do(t, http.MethodPost, "/api/admin/destinations", withExtra, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs := decodeMap(t, raw)["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "rating", errs[0].(map[string]interface{})["field"])

	resp, _ = s.do(t, http.MethodPost, "/api/contact", fiber.Map{"firstName": "A"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = s.do(t, http.MethodPost, "/api/newsletter", fiber.Map{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid email address", decodeMap(t, raw)["message"])

	all, err := s.store.Destinations.List(context.Background(), models.DestinationFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPackageEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	pkg := fiber.Map{
		"destinationId":  "dest-1",
		"name":           "Kerala Backwaters",
		"description":    "Houseboat cruise",
		"imageUrl":       "https://example.com/kerala.jpg",
		"pricePerPerson": "₹18,999",
		"duration":       "4 Days / 3 Nights",
		"highlights":     []string{"Houseboat stay"},
		"location":       "Alleppey",
		"buyNowUrl":      "https://pay.example.com/kerala",
		"isFeatured":     true,
	}
	resp, raw := s.do(t, http.MethodPost, "/api/admin/packages", pkg, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	id := decodeMap(t, raw)["id"].(string)

	pkg["highlights"] = []string{}
	resp, raw = s.do(t, http.MethodPost, "/api/admin/packages", pkg, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid package data", decodeMap(t, raw)["message"])

	_, raw = s.do(t, http.MethodGet, "/api/packages?featured=true", nil, "")
	assert.Len(t, decodeList(t, raw), 1)

	_, raw = s.do(t, http.MethodGet, "/api/packages/destination/dest-1", nil, "")
	assert.Len(t, decodeList(t, raw), 1)

	_, raw = s.do(t, http.MethodGet, "/api/packages/destination/other", nil, "")
	assert.Empty(t, decodeList(t, raw))

	resp, raw = s.do(t, http.MethodGet, "/api/packages/"+id+"/qrcode?size=200", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))

	resp, raw = s.do(t, http.MethodPut, "/api/admin/packages/"+id, fiber.Map{"duration": "5 Days"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeMap(t, raw)
	assert.Equal(t, "5 Days", updated["duration"])
	assert.Equal(t, "Kerala Backwaters", updated["name"])

	resp, _ = s.do(t, http.MethodDelete, "/api/admin/packages/"+id, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = s.do(t, http.MethodGet, "/api/packages/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Package not found", decodeMap(t, raw)["message"])

	_, raw = s.do(t, http.MethodGet, "/api/packages", nil, "")
	assert.Empty(t, decodeList(t, raw))

	resp, raw = s.do(t, http.MethodGet, "/api/admin/packages/"+id, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decodeMap(t, raw)["isActive"])

	_, raw = s.do(t, http.MethodGet, "/api/admin/packages?includeInactive=true", nil, token)
	assert.Len(t, decodeList(t, raw), 1)
}

func TestContentEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	resp, raw := s.do(t, http.MethodPut, "/api/admin/content", []fiber.Map{
		{"key": "site.name", "value": "TTravel"},
		{"key": "hero.title", "value": "Explore"},
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	body := decodeMap(t, raw)
	assert.Equal(t, "Content updated successfully", body["message"])
	assert.Len(t, body["content"], 2)

	_, raw = s.do(t, http.MethodPut, "/api/admin/content", []fiber.Map{{"key": "site.name", "value": "TTravel Hospitality"}}, token)
	require.NotNil(t, decodeMap(t, raw)["content"])

	_, raw = s.do(t, http.MethodGet, "/api/content", nil, "")
	assert.Equal(t, map[string]interface{}{"site.name": "TTravel Hospitality", "hero.title": "Explore"}, decodeMap(t, raw))

	resp, _ = s.do(t, http.MethodPut, "/api/admin/content", []fiber.Map{{"key": "a", "value": "1"}, {"key": ""}}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, raw = s.do(t, http.MethodGet, "/api/admin/content", nil, token)
	assert.Len(t, decodeList(t, raw), 2)
}

func TestContactEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	resp, raw := s.do(t, http.MethodPost, "/api/contact", fiber.Map{
		"firstName": "Asha",
		"lastName":  "Rao",
		"email":     "asha@example.com",
		"subject":   "Honeymoon",
		"message":   "A week in Bali",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	body := decodeMap(t, raw)
	assert.Equal(t, "Message sent successfully", body["message"])
	id := body["id"].(string)

	_, raw = s.do(t, http.MethodGet, "/api/admin/contact-submissions", nil, token)
	list := decodeList(t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, "pending", list[0]["status"])

	for i := 0; i < 2; i++ {
		resp, raw = s.do(t, http.MethodPut, "/api/admin/contact-submissions/"+id+"/mark-responded", nil, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Submission marked as responded", decodeMap(t, raw)["message"])
	}

	resp, raw = s.do(t, http.MethodPut, "/api/admin/contact-submissions/"+id+"/status", fiber.Map{"status": "pending"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid status data", decodeMap(t, raw)["message"])

	_, raw = s.do(t, http.MethodGet, "/api/admin/contact-submissions", nil, token)
	assert.Equal(t, "responded", decodeList(t, raw)[0]["status"])

	resp, raw = s.do(t, http.MethodPut, "/api/admin/contact-submissions/"+id+"/status", fiber.Map{"status": "responded"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "responded", decodeMap(t, raw)["status"])

	resp, _ = s.do(t, http.MethodPut, "/api/admin/contact-submissions/"+id+"/status", fiber.Map{"status": "archived"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = s.do(t, http.MethodPut, "/api/admin/contact-submissions/missing/mark-responded", nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Submission not found", decodeMap(t, raw)["message"])
}

func TestNewsletterEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	for i := 0; i < 2; i++ {
		resp, raw := s.do(t, http.MethodPost, "/api/newsletter", fiber.Map{"email": "reader@example.com"}, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Successfully subscribed to newsletter", decodeMap(t, raw)["message"])
	}

	_, raw := s.do(t, http.MethodGet, "/api/admin/newsletter-subscriptions", nil, token)
	list := decodeList(t, raw)
	require.Len(t, list, 1)
	id := list[0]["id"].(string)

	resp, _ := s.do(t, http.MethodPost, "/api/newsletter/unsubscribe", fiber.Map{"email": "stranger@example.com"}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodDelete, "/api/admin/newsletter-subscriptions/"+id, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, raw = s.do(t, http.MethodGet, "/api/admin/newsletter-subscriptions", nil, token)
	assert.Empty(t, decodeList(t, raw))
}

func TestGalleryEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	resp, raw := s.do(t, http.MethodPost, "/api/gallery", fiber.Map{
		"imageUrl":      "https://example.com/munnar.jpg",
		"title":         "Munnar",
		"review":        "Tea gardens",
		"uploaderName":  "Ravi",
		"uploaderEmail": "ravi@example.com",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	image := decodeMap(t, raw)["image"].(map[string]interface{})
	id := image["id"].(string)
	assert.Equal(t, false, image["isApproved"])

	_, raw = s.do(t, http.MethodGet, "/api/gallery", nil, "")
	assert.Empty(t, decodeList(t, raw))

	_, raw = s.do(t, http.MethodGet, "/api/admin/gallery", nil, token)
	assert.Len(t, decodeList(t, raw), 1)

	resp, raw = s.do(t, http.MethodPut, "/api/admin/gallery/"+id+"/approve", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Image approved successfully", decodeMap(t, raw)["message"])

	_, raw = s.do(t, http.MethodGet, "/api/gallery", nil, "")
	assert.Len(t, decodeList(t, raw), 1)

	resp, _ = s.do(t, http.MethodDelete, "/api/admin/gallery/"+id, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = s.do(t, http.MethodDelete, "/api/admin/gallery/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Image not found", decodeMap(t, raw)["message"])

	_, raw = s.do(t, http.MethodGet, "/api/gallery", nil, "")
	assert.Empty(t, decodeList(t, raw))
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	for _, addr := range []string{"a@example.com", "b@example.com"} {
		resp, _ := s.do(t, http.MethodPost, "/api/contact", fiber.Map{
			"firstName": "A", "lastName": "B", "email": addr, "subject": "Hi", "message": "Hello",
		}, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, _ := s.do(t, http.MethodPost, "/api/newsletter", fiber.Map{"email": "reader@example.com"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := s.do(t, http.MethodGet, "/api/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, 2, stats.ContactForms)
	assert.Equal(t, 1, stats.Newsletter)
	assert.Equal(t, 2, stats.ThisMonth)
	assert.Equal(t, 0, stats.Growth)
	assert.Equal(t, 1, stats.NewsletterThisMonth)
}

func TestChangePassword(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	resp, raw := s.do(t, http.MethodPut, "/api/admin/change-password", fiber.Map{"currentPassword": "wrong", "newPassword": "newpass1"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Current password is incorrect", decodeMap(t, raw)["message"])

	resp, raw = s.do(t, http.MethodPut, "/api/admin/change-password", fiber.Map{"currentPassword": "admin123", "newPassword": "short"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid password data", decodeMap(t, raw)["message"])

	resp, raw = s.do(t, http.MethodPut, "/api/admin/change-password", fiber.Map{"currentPassword": "admin123", "newPassword": "newpass1"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Password changed successfully", decodeMap(t, raw)["message"])

	resp, _ = s.do(t, http.MethodPost, "/api/auth/login", fiber.Map{"username": "admin", "password": "admin123"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	s.login(t, "admin", "newpass1")
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/nothing-here", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, decodeMap(t, raw)["success"])
}

func TestPartialUpdateKeepsIdentity(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "admin", "admin123")

	_, raw := s.do(t, http.MethodPost, "/api/admin/destinations", destinationBody("Goa", models.DestinationDomestic), token)
	destination := decodeMap(t, raw)
	destinationID := destination["id"].(string)

	_, raw = s.do(t, http.MethodPost, "/api/admin/packages", fiber.Map{
		"destinationId":  destinationID,
		"name":           "Goa Beaches",
		"description":    "Sun and sand",
		"imageUrl":       "https://example.com/goa.jpg",
		"pricePerPerson": "₹12,999",
		"duration":       "3 Days / 2 Nights",
		"highlights":     []string{"Baga beach", "Fort Aguada"},
		"location":       "North Goa",
		"buyNowUrl":      "https://pay.example.com/goa",
	}, token)
	pkg := decodeMap(t, raw)
	packageID := pkg["id"].(string)

	resp, _ := s.do(t, http.MethodPut, "/api/admin/destinations/"+destinationID, fiber.Map{"name": "Goa Beach"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodPut, "/api/admin/packages/"+packageID, fiber.Map{"pricePerPerson": "₹14,999"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Unrelated traffic reuses the request buffers of the updates above.
	for i := 0; i < 50; i++ {
		s.do(t, http.MethodGet, "/api/destinations/zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", nil, "")
		s.do(t, http.MethodGet, "/api/packages/destination/yyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyyy", nil, "")
	}

	_, raw = s.do(t, http.MethodGet, "/api/destinations", nil, "")
	destinations := decodeList(t, raw)
	require.Len(t, destinations, 1)
	assert.Equal(t, destinationID, destinations[0]["id"])
	assert.Equal(t, "Goa Beach", destinations[0]["name"])
	assert.Equal(t, destination["type"], destinations[0]["type"])
	assert.Equal(t, destination["imageUrl"], destinations[0]["imageUrl"])
	assert.Equal(t, destination["formUrl"], destinations[0]["formUrl"])
	assert.Equal(t, destination["icon"], destinations[0]["icon"])

	resp, raw = s.do(t, http.MethodGet, "/api/admin/destinations/"+destinationID, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, destinationID, decodeMap(t, raw)["id"])

	resp, raw = s.do(t, http.MethodGet, "/api/packages/"+packageID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeMap(t, raw)
	assert.Equal(t, packageID, got["id"])
	assert.Equal(t, "₹14,999", got["pricePerPerson"])
	for _, field := range []string{"destinationId", "name", "description", "imageUrl", "duration", "highlights", "location", "buyNowUrl", "isFeatured", "isActive"} {
		assert.Equal(t, pkg[field], got[field], field)
	}

	_, raw = s.do(t, http.MethodGet, "/api/packages/destination/"+destinationID, nil, "")
	listed := decodeList(t, raw)
	require.Len(t, listed, 1)
	assert.Equal(t, packageID, listed[0]["id"])
}
