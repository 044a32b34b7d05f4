package comments

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

func postComment(r *gin.Engine, answerID string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/posts/answers/"+answerID+"/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateComment_TopLevel(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	answerID := "answer-uuid"
	userID := "user-uuid"

	mock.ExpectQuery(`SELECT \* FROM "answers" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "answers"\."id" LIMIT 1`).
		WithArgs(answerID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(answerID))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"\."id" LIMIT 1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role"}).
			AddRow(userID, "Nora", "STUDENT"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("comment-uuid"))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	r := testutils.SetupTestRouter()
	r.POST("/posts/answers/:id/comments", func(c *gin.Context) {
		c.Set("user_id", userID)
		CreateComment(c)
	})

	resp := postComment(r, answerID, map[string]interface{}{"content": "Thanks, that helped a lot."})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	comment := respBody["comment"].(map[string]interface{})
	assert.Equal(t, "Nora", comment["authorName"])
}

func TestCreateComment_ReplyToReplyRejected(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	answerID := "answer-uuid"
	grandparent := "top-level-uuid"

	mock.ExpectQuery(`SELECT \* FROM "answers" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "answers"\."id" LIMIT 1`).
		WithArgs(answerID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(answerID))

	// The parent is itself a reply.
	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "comments"\."id" LIMIT 1`).
		WithArgs("reply-uuid", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "answer_id", "parent_comment_id"}).
			AddRow("reply-uuid", answerID, grandparent))

	r := testutils.SetupTestRouter()
	r.POST("/posts/answers/:id/comments", func(c *gin.Context) {
		c.Set("user_id", "user-uuid")
		CreateComment(c)
	})

	resp := postComment(r, answerID, map[string]interface{}{
		"content":         "Replying to a reply",
		"parentCommentId": "reply-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Cannot reply to a reply", respBody["error"])
}

func TestCreateComment_ParentUnderOtherAnswer(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	answerID := "answer-uuid"

	mock.ExpectQuery(`SELECT \* FROM "answers" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "answers"\."id" LIMIT 1`).
		WithArgs(answerID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(answerID))

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "comments"\."id" LIMIT 1`).
		WithArgs("parent-uuid", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "answer_id"}).
			AddRow("parent-uuid", "other-answer-uuid"))

	r := testutils.SetupTestRouter()
	r.POST("/posts/answers/:id/comments", func(c *gin.Context) {
		c.Set("user_id", "user-uuid")
		CreateComment(c)
	})

	resp := postComment(r, answerID, map[string]interface{}{
		"content":         "Cross-thread reply",
		"parentCommentId": "parent-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateComment_BlockedByScreening(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	answerID := "answer-uuid"

	mock.ExpectQuery(`SELECT \* FROM "answers" WHERE id = \$1 AND is_deleted = \$2 ORDER BY "answers"\."id" LIMIT 1`).
		WithArgs(answerID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(answerID))

	r := testutils.SetupTestRouter()
	r.POST("/posts/answers/:id/comments", func(c *gin.Context) {
		c.Set("user_id", "user-uuid")
		CreateComment(c)
	})

	resp := postComment(r, answerID, map[string]interface{}{"content": "kys"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
