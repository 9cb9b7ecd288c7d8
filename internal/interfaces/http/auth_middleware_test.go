package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/santiyepro/santiye-api/internal/interfaces/http"
	pkgjwt "github.com/santiyepro/santiye-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test yardımcıları
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "santiye-api-test"
	testExpMin    = 60
)

// buildTestApp asgari bir Fiber uygulaması kurar:
//   - AuthMiddleware JWT'yi çözer ve locals'a yazar
//   - RequireRole erişimi yetkilendirir
//   - Middleware'leri geçen istek 200 döner
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole verilen rolle bir JWT üretir.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "geçerli bir JWT üretilebilmeli")
	return "Bearer " + tok
}

// doRequest GET /protected isteğini atar ve yanıtı döner.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole testleri
// ──────────────────────────────────────────────────────────────────────────────

// Kullanıcı gerekli role sahip: geçmeli (HTTP 200).
func TestRequireRole_AdminYetkiliRotayaGirer(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin, admin'e kısıtlı rotaya girebilmeli")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

// Kullanıcı izinli rollerden birine sahip (çoklu rol): HTTP 200.
func TestRequireRole_DepocuCokluRolluRotayaGirer(t *testing.T) {
	app := buildTestApp("admin", "depocu")
	resp := doRequest(t, app, tokenForRole(t, "depocu"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"depocu, admin veya depocu izinli rotaya girebilmeli")
}

// Kullanıcının rolü farklı: HTTP 403 Forbidden.
func TestRequireRole_DepocuAdminRotasindaEngellenir(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "depocu"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"depocu, admin'e kısıtlı rotaya girememeli")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"hata yanıtı FORBIDDEN kodunu içermeli")
}

func TestRequireRole_SantiyeSefiDepocuRotasindaEngellenir(t *testing.T) {
	app := buildTestApp("depocu")
	resp := doRequest(t, app, tokenForRole(t, "santiye_sefi"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Rol claim'i olmayan token: HTTP 401.
func TestRequireRole_RolsuzToken401Doner(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"rolsüz token 401 dönmeli")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Authorization başlığı yok: HTTP 401.
func TestRequireRole_AuthBasligiYok401Doner(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Bozuk token: HTTP 401.
func TestRequireRole_GecersizToken401Doner(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer gecersiz.token.burada")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware: claim çıkarımı
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ClaimleriCikarir(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "santiye_sefi"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "santiye_sefi", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT paketi: generate/parse bütünlüğü
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateVeParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "depocu", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "depocu", role)
}

func TestJWT_SuresiDolmusTokenHataDoner(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "süresi dolmuş token hata dönmeli")
}

func TestJWT_YanlisSecretHataDoner(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("bambaska-bir-secret", tok)
	assert.Error(t, err, "yanlış secret token'ı geçersiz kılmalı")
}
