package posts

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
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"murshid-backend/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestCreatePost_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "posts" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("post-uuid"))
	mock.ExpectCommit()

	// Derived counts in the response.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "answers" WHERE post_id = \$1 AND is_deleted = \$2`).
		WithArgs("post-uuid", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes" WHERE target_type = \$1 AND target_id = \$2`).
		WithArgs("post", "post-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	r := testutils.SetupTestRouter()
	r.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "STUDENT")
		CreatePost(c)
	})

	postData := map[string]interface{}{
		"title":   "Which engineering major has the best job market?",
		"content": "I am choosing between mechanical and electrical engineering.",
		"tags":    []string{"engineering"},
	}
	jsonData, _ := json.Marshal(postData)

	req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	post := respBody["post"].(map[string]interface{})
	assert.Equal(t, "post-uuid", post["id"])
	assert.Equal(t, float64(0), post["answersCount"])
	assert.Nil(t, respBody["warnings"])
}

func TestCreatePost_BlockedByScreening(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "user-uuid")
		CreatePost(c)
	})

	postData := map[string]interface{}{
		"title":   "Guaranteed admission for cash",
		"content": "Send me money and I will get you in.",
	}
	jsonData, _ := json.Marshal(postData)

	req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	// Nothing hits the database when screening blocks.
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Content rejected by moderation", respBody["error"])
	assert.Equal(t, "high", respBody["severity"])
}

func TestCreatePost_MediumSeverityWarns(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "posts" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("post-uuid"))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "answers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	r := testutils.SetupTestRouter()
	r.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "user-uuid")
		c.Set("role", "STUDENT")
		CreatePost(c)
	})

	postData := map[string]interface{}{
		"title":   "Question about scholarships",
		"content": "You can reach me at student@example.com for details.",
	}
	jsonData, _ := json.Marshal(postData)

	req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	// Medium severity content is persisted but the response carries warnings.
	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NotEmpty(t, respBody["warnings"])
}

func TestGetPostByID_DeletedReadsAsAbsent(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "posts"\."id" LIMIT 1`).
		WithArgs("post-uuid", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.GET("/posts/:id", GetPostByID)

	req, _ := http.NewRequest(http.MethodGet, "/posts/post-uuid", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeletePost_NotOwner(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1 ORDER BY "posts"\."id" LIMIT 1`).
		WithArgs("post-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow("post-uuid", "owner-uuid"))

	r := testutils.SetupTestRouter()
	r.DELETE("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "someone-else")
		c.Set("role", "STUDENT")
		DeletePost(c)
	})

	req, _ := http.NewRequest(http.MethodDelete, "/posts/post-uuid", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeletePost_AdminWithReason(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1 ORDER BY "posts"\."id" LIMIT 1`).
		WithArgs("post-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "is_deleted"}).
			AddRow("post-uuid", "owner-uuid", false))

	// The cascade reloads the post and walks its descendants.
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1 ORDER BY "posts"\."id" LIMIT 1`).
		WithArgs("post-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "is_deleted"}).
			AddRow("post-uuid", "owner-uuid", false))
	mock.ExpectQuery(`SELECT "id" FROM "answers" WHERE post_id = \$1`).
		WithArgs("post-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET .+ WHERE id = \$6 AND is_deleted = \$7`).
		WithArgs(sqlmock.AnyArg(), "admin-uuid", "Spam", true, sqlmock.AnyArg(), "post-uuid", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "admin-uuid")
		c.Set("role", "ADMIN")
		DeletePost(c)
	})

	body, _ := json.Marshal(map[string]string{"reason": "Spam"})
	req, _ := http.NewRequest(http.MethodDelete, "/posts/post-uuid", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
