package models

// ContentType identifies which table a like, report or version row points at.
type ContentType string

const (
	PostContent    ContentType = "post"
	AnswerContent  ContentType = "answer"
	CommentContent ContentType = "comment"
)

func ValidContentType(t ContentType) bool {
	switch t {
	case PostContent, AnswerContent, CommentContent:
		return true
	}
	return false
}
