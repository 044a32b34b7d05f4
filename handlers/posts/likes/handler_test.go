package likes

import (
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
	"gorm.io/gorm"

	"murshid-backend/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestTogglePostLike_Add(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "posts"\."id" LIMIT 1`).
		WithArgs(postID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(postID, "Test Post"))

	mock.ExpectQuery(`SELECT \* FROM "likes" WHERE target_type = \$1 AND target_id = \$2 AND user_id = \$3 ORDER BY "likes"\."id" LIMIT 1`).
		WithArgs("post", postID, userID).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "likes" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("like-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", userID)
		TogglePostLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Like added successfully", respBody["message"])
}

func TestTogglePostLike_Remove(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "posts"\."id" LIMIT 1`).
		WithArgs(postID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(postID, "Test Post"))

	mock.ExpectQuery(`SELECT \* FROM "likes" WHERE target_type = \$1 AND target_id = \$2 AND user_id = \$3 ORDER BY "likes"\."id" LIMIT 1`).
		WithArgs("post", postID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "target_type", "target_id", "user_id"}).
			AddRow("like-uuid", "post", postID, userID))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes" WHERE "likes"\."id" = \$1`).
		WithArgs("like-uuid").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", userID)
		TogglePostLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Like removed successfully", respBody["message"])
}

func TestToggleAnswerLike_DeletedAnswer(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	answerID := "223e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	// A soft-deleted answer reads as absent, so liking it is a 404.
	mock.ExpectQuery(`SELECT \* FROM "answers" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "answers"\."id" LIMIT 1`).
		WithArgs(answerID, false).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/posts/answers/:id/like", func(c *gin.Context) {
		c.Set("user_id", userID)
		ToggleAnswerLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/posts/answers/"+answerID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestTogglePostLike_Unauthenticated(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/like", TogglePostLike)

	req, _ := http.NewRequest(http.MethodPost, "/posts/some-id/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
