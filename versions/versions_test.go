package versions

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"murshid-backend/models"
	"murshid-backend/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	m.Run()
}

func TestRecord_AssignsNextVersionNumber(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version_number\), 0\) FROM "content_versions" WHERE content_type = \$1 AND content_id = \$2`).
		WithArgs(models.PostContent, "post-uuid").
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(2))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "content_versions"`).
		WithArgs(sqlmock.AnyArg(), models.PostContent, "post-uuid", 3, sqlmock.AnyArg(), sqlmock.AnyArg(), "editor-uuid", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := Record(gormDB, models.PostContent, "post-uuid", "editor-uuid",
		map[string]any{"title": "Before"},
		map[string]any{"title": "After"},
	)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_FirstEditIsVersionOne(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version_number\), 0\) FROM "content_versions"`).
		WithArgs(models.AnswerContent, "answer-uuid").
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "content_versions"`).
		WithArgs(sqlmock.AnyArg(), models.AnswerContent, "answer-uuid", 1, sqlmock.AnyArg(), sqlmock.AnyArg(), "editor-uuid", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := Record(gormDB, models.AnswerContent, "answer-uuid", "editor-uuid",
		map[string]any{"content": "Before"},
		map[string]any{"content": "After"},
	)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NewestFirst(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "content_versions" WHERE content_type = \$1 AND content_id = \$2 ORDER BY version_number DESC`).
		WithArgs(models.PostContent, "post-uuid").
		WillReturnRows(mock.NewRows([]string{"id", "content_type", "content_id", "version_number"}).
			AddRow("v2-uuid", "post", "post-uuid", 2).
			AddRow("v1-uuid", "post", "post-uuid", 1))

	history, err := List(gormDB, models.PostContent, "post-uuid")

	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, 2, history[0].VersionNumber)
	assert.Equal(t, 1, history[1].VersionNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostSnapshot(t *testing.T) {
	post := models.Post{
		Title:    "Which major fits data science?",
		Content:  "Long question body",
		Tags:     []string{"data-science"},
		IsSolved: true,
	}

	snapshot := PostSnapshot(&post)

	assert.Equal(t, "Which major fits data science?", snapshot["title"])
	assert.Equal(t, []string{"data-science"}, snapshot["tags"])
	assert.Equal(t, true, snapshot["is_solved"])
}
