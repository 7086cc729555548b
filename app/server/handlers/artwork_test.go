package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validArtworkBody = `{"title":"A","artist":"B","price":100,"imageUrl":"http://x/y.png"}`

func TestArtworkMutationsRequireAuth(t *testing.T) {
	ta := newTestApp(t)

	// a valid body does not help without a session
	for _, tc := range []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/artworks", validArtworkBody},
		{http.MethodPut, "/artworks/1", `{"price":150}`},
		{http.MethodDelete, "/artworks/1", ""},
	} {
		rec := ta.request(t, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Unauthorized", decodeJSON(t, rec)["message"])
	}
}

func TestArtworkMutationsRequireAdmin(t *testing.T) {
	ta := newTestApp(t)
	ta.createUser(t, "alice", "secret1", false)
	cookie := ta.login(t, "alice", "secret1")

	// authenticated but not admin collapses to the same 401
	rec := ta.request(t, http.MethodPost, "/artworks", validArtworkBody, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeJSON(t, rec)["message"])
}

func TestArtworkListIsPublic(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.request(t, http.MethodGet, "/artworks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestArtworkCRUDFlow(t *testing.T) {
	ta := newTestApp(t)
	ta.createUser(t, "admin", "admin_password_123", true)
	cookie := ta.login(t, "admin", "admin_password_123")

	// create
	rec := ta.request(t, http.MethodPost, "/artworks", validArtworkBody, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON(t, rec)
	id := created["id"].(float64)
	assert.NotZero(t, id)
	assert.Equal(t, "A", created["title"])
	assert.Equal(t, float64(100), created["price"])

	// visible to anonymous listing
	rec = ta.request(t, http.MethodGet, "/artworks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"A"`)

	// partial update keeps untouched fields
	rec = ta.request(t, http.MethodPut, "/artworks/1", `{"price":150}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON(t, rec)
	assert.Equal(t, float64(150), updated["price"])
	assert.Equal(t, "A", updated["title"])
	assert.Equal(t, "B", updated["artist"])

	// delete
	rec = ta.request(t, http.MethodDelete, "/artworks/1", "", cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ta.request(t, http.MethodGet, "/artworks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	// deleting again is still a 204
	rec = ta.request(t, http.MethodDelete, "/artworks/1", "", cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestArtworkUpdateNotFound(t *testing.T) {
	ta := newTestApp(t)
	ta.createUser(t, "admin", "admin_password_123", true)
	cookie := ta.login(t, "admin", "admin_password_123")

	rec := ta.request(t, http.MethodPut, "/artworks/999", `{"price":150}`, cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Artwork not found", decodeJSON(t, rec)["message"])
}

func TestArtworkCreateInvalidInput(t *testing.T) {
	ta := newTestApp(t)
	ta.createUser(t, "admin", "admin_password_123", true)
	cookie := ta.login(t, "admin", "admin_password_123")

	for _, body := range []string{
		`{}`,
		`{"title":"A","artist":"B","imageUrl":"http://x/y.png"}`, // missing price
		`{"title":"A","artist":"B","price":100}`,                 // missing imageUrl
		`{"title":"A","artist":"B","price":"expensive","imageUrl":"http://x/y.png"}`, // wrong type
	} {
		rec := ta.request(t, http.MethodPost, "/artworks", body, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Equal(t, "Invalid input", decodeJSON(t, rec)["message"])
	}
}

func TestArtworkNonNumericID(t *testing.T) {
	ta := newTestApp(t)
	ta.createUser(t, "admin", "admin_password_123", true)
	cookie := ta.login(t, "admin", "admin_password_123")

	rec := ta.request(t, http.MethodPut, "/artworks/abc", `{"price":150}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ta.request(t, http.MethodDelete, "/artworks/abc", "", cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
