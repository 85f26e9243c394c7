package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infield-hq/infield-console/internal/application/controller"
	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/application/session"
	"github.com/infield-hq/infield-console/internal/domain/entity"
	"github.com/infield-hq/infield-console/internal/infrastructure/localstore"
	"github.com/infield-hq/infield-console/internal/infrastructure/memory"
)

const testJWTSecret = "secreto-de-prueba"

// newTestApp arma la consola completa en modo mock sobre un store sembrado.
func newTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	adminAPI := memory.NewAdminAPI(store)
	catalogAPI := memory.NewCatalogAPI(store)
	authAPI := memory.NewAuthAPI(store, memory.TokenConfig{Secret: testJWTSecret, Issuer: "infield-console", ExpMinutes: 60})
	chatAPI := memory.NewChatAPI(store)

	kv, err := localstore.Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	sess := session.NewManager(authAPI, kv, session.NopTokenHolder{})

	app := fiber.New()
	Router(app, RouterDeps{
		Session:   sess,
		Accounts:  controller.NewAccountsController(adminAPI),
		Projects:  controller.NewProjectsController(adminAPI),
		Users:     controller.NewUsersController(adminAPI),
		Catalog:   controller.NewCatalogController(adminAPI, catalogAPI),
		Chat:      controller.NewChatController(chatAPI),
		JWTSecret: testJWTSecret,
	})
	return app, store
}

// loginToken hace login con las credenciales demo y devuelve el bearer token.
func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	// El token viaja en la respuesta de la fachada, no del handler; se lee de
	// la fachada directamente para no acoplar el test al cuerpo del login.
	store := memory.NewStore()
	authAPI := memory.NewAuthAPI(store, memory.TokenConfig{Secret: testJWTSecret, Issuer: "infield-console", ExpMinutes: 60})
	resp, err := authAPI.Login(t.Context(), dto.LoginRequest{
		Email:    memory.DemoAdminEmail,
		Password: memory.DemoAdminPassword,
	})
	require.NoError(t, err)
	return resp.AccessToken
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ─────────────────────────────────────────────────────────────
// Auth
// ─────────────────────────────────────────────────────────────

func TestLogin_CredencialesDemo(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/console/auth/login", "",
		`{"email":"`+memory.DemoAdminEmail+`","password":"`+memory.DemoAdminPassword+`"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user dto.BackendUser
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, memory.DemoAdminEmail, user.Email)
}

func TestLogin_PasswordIncorrectaEs401(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/console/auth/login", "",
		`{"email":"`+memory.DemoAdminEmail+`","password":"incorrecta"}`)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNAUTHORIZED", body.ErrorCode)
}

func TestRutasProtegidas_SinTokenEs401(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/console/accounts/", "", "")

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_TOKEN", body.ErrorCode)
}

func TestRutasProtegidas_TokenConFirmaInvalidaEs401(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/console/accounts/", "un-token-falso", "")

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ─────────────────────────────────────────────────────────────
// Cuentas
// ─────────────────────────────────────────────────────────────

func TestListAccounts_FiltraYPagina(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/console/accounts/?q=acme&status=Active", token, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page entity.Paginated[entity.Account]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ACC-000001", page.Items[0].Code)
}

func TestCreateAccount_Devuelve201ConCodigoNuevo(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/console/accounts/", token,
		`{"accountName":"Delta Mining","email":"admin@delta.test"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var acc entity.Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&acc))
	assert.Equal(t, "ACC-000005", acc.Code)
	assert.Equal(t, entity.StatusActive, acc.Status)
}

func TestCreateAccount_ValidacionFallidaEs400(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/console/accounts/", token,
		`{"accountName":"X","email":"no-es-email"}`)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteAccount_Desconocida404(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodDelete, "/console/accounts/no-existe", token, "")

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportAccounts_DevuelveCSVAdjunto(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/console/accounts/export?status=Active", token, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "cuentas_")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ACC-000001")
	assert.NotContains(t, string(raw), "ACC-000002") // inactiva, filtrada
}

// ─────────────────────────────────────────────────────────────
// Proyectos y usuarios
// ─────────────────────────────────────────────────────────────

func TestListProjects_BajoLaCuenta(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/console/accounts/ACC-000001/projects", token, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page entity.Paginated[entity.Project]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Items, 2)
}

func TestListProjects_CuentaInexistente404(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/console/accounts/ACC-999999/projects", token, "")

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListUsers_FiltraPorEstado(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/console/users/?accountCode=ACC-000001&projectCode=PRJ-000001&status=Onboarding", token, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page entity.Paginated[entity.User]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ana Fuentes", page.Items[0].Name)
}

// ─────────────────────────────────────────────────────────────
// Catálogo
// ─────────────────────────────────────────────────────────────

func TestCatalog_FlujoCompletoDeLaCadena(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/console/catalog/account", token, `{"accountCode":"ACC-000001"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap controller.CatalogSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	require.NotEmpty(t, snap.Projects)
	projectID := snap.Projects[0].ID

	resp = doJSON(t, app, http.MethodPost, "/console/catalog/project", token, `{"projectId":"`+projectID+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Len(t, snap.Roles, 3)
	assert.Len(t, snap.Designations, 3)

	// Crear un rol recarga el catálogo en la misma respuesta.
	resp = doJSON(t, app, http.MethodPost, "/console/catalog/roles", token,
		`{"roles":[{"projectId":"`+projectID+`","roleName":"Gerente","level":2}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Len(t, snap.Roles, 4)
}

func TestCatalog_CambiarDeCuentaLimpiaRolesYDesignaciones(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/console/catalog/account", token, `{"accountCode":"ACC-000001"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap controller.CatalogSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	projectID := snap.Projects[0].ID
	resp = doJSON(t, app, http.MethodPost, "/console/catalog/project", token, `{"projectId":"`+projectID+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/console/catalog/account", token, `{"accountCode":"ACC-000003"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "ACC-000003", snap.SelectedAccountCode)
	assert.Empty(t, snap.SelectedProjectID)
	assert.Empty(t, snap.Roles)
	assert.Empty(t, snap.Designations)
}

// ─────────────────────────────────────────────────────────────
// Agente de IA
// ─────────────────────────────────────────────────────────────

func TestAIChat_RespondeYMantieneTranscript(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/console/ai/chat", token,
		`{"message":"¿cuántas cuentas hay?","currentPage":"accounts"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var chat dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&chat))
	assert.NotEmpty(t, chat.Response)
	assert.NotEmpty(t, chat.SessionID)

	resp = doJSON(t, app, http.MethodGet, "/console/ai/transcript", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var transcript []entity.ChatMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&transcript))
	assert.Len(t, transcript, 2)
}

func TestAIStatus_DisponibleEnModoDemo(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/console/ai/status", token, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status dto.AgentStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.True(t, status.Available)
}
