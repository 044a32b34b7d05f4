package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"murshid-backend/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)
	os.Setenv("JWT_SECRET", "test-secret")

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestRegister_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT 1`).
		WithArgs("student@example.com").
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	body, _ := json.Marshal(map[string]string{
		"email":    "student@example.com",
		"password": "Passw0rd",
		"name":     "Nora",
	})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "student@example.com", respBody["email"])
}

func TestRegister_WeakPassword(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	body, _ := json.Marshal(map[string]string{
		"email":    "student@example.com",
		"password": "alllowercase1",
		"name":     "Nora",
	})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	body, _ := json.Marshal(map[string]string{
		"email":    "student@example.com",
		"password": "Passw0rd",
		"name":     "Nora",
		"role":     "ADMIN",
	})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegister_EmailAlreadyUsed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT 1`).
		WithArgs("student@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow("user-uuid", "student@example.com"))

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	body, _ := json.Marshal(map[string]string{
		"email":    "student@example.com",
		"password": "Passw0rd",
		"name":     "Nora",
	})
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestLogin_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT 1`).
		WithArgs("student@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow("user-uuid", "student@example.com", string(hash), "STUDENT"))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "student@example.com",
		"password": "Passw0rd",
	})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NotEmpty(t, respBody["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT 1`).
		WithArgs("student@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow("user-uuid", "student@example.com", string(hash)))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "student@example.com",
		"password": "WrongPassword1",
	})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
