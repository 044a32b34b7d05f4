package moderation

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"murshid-backend/models"
)

// Synthetic reasons stamped on descendants removed by a cascade. The root
// itself always carries the caller-supplied reason.
const (
	PostDeletedReason   = "Post deleted"
	AnswerDeletedReason = "Answer deleted"
)

var ErrContentNotFound = errors.New("content not found")

// DeletePost soft-deletes a post and everything under it: comments first,
// then answers, then the post. That ordering means there is never a window
// where an answer reads as deleted while its comments still show as live.
//
// The stages are not wrapped in one transaction; a failed stage surfaces as
// an error and the whole cascade can be retried safely, because every
// update is guarded by is_deleted = false and therefore never restamps
// audit fields on rows already deleted.
func DeletePost(db *gorm.DB, postID, actorID, reason string) error {
	var post models.Post
	if err := db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("loading post %s: %w", postID, err)
	}

	// All answers under the post, regardless of their current deletion
	// state: a retried cascade must still reach their comments.
	var answerIDs []string
	if err := db.Model(&models.Answer{}).Where("post_id = ?", postID).Pluck("id", &answerIDs).Error; err != nil {
		return fmt.Errorf("collecting answers of post %s: %w", postID, err)
	}

	now := time.Now()

	if len(answerIDs) > 0 {
		if err := markDeleted(db.Model(&models.Comment{}).Where("answer_id IN ?", answerIDs), actorID, PostDeletedReason, now); err != nil {
			return fmt.Errorf("cascading to comments of post %s: %w", postID, err)
		}
		if err := markDeleted(db.Model(&models.Answer{}).Where("id IN ?", answerIDs), actorID, PostDeletedReason, now); err != nil {
			return fmt.Errorf("cascading to answers of post %s: %w", postID, err)
		}
	}

	if post.IsDeleted {
		// Re-delete of an already-deleted root is a no-op.
		return nil
	}

	if err := markDeleted(db.Model(&models.Post{}).Where("id = ?", postID), actorID, reason, now); err != nil {
		return fmt.Errorf("deleting post %s: %w", postID, err)
	}

	return nil
}

// DeleteAnswer soft-deletes an answer and its comments. Comments are
// stamped with the synthetic reason before the answer itself is marked.
func DeleteAnswer(db *gorm.DB, answerID, actorID, reason string) error {
	var answer models.Answer
	if err := db.First(&answer, "id = ?", answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("loading answer %s: %w", answerID, err)
	}

	now := time.Now()

	if err := markDeleted(db.Model(&models.Comment{}).Where("answer_id = ?", answerID), actorID, AnswerDeletedReason, now); err != nil {
		return fmt.Errorf("cascading to comments of answer %s: %w", answerID, err)
	}

	if answer.IsDeleted {
		return nil
	}

	if err := markDeleted(db.Model(&models.Answer{}).Where("id = ?", answerID), actorID, reason, now); err != nil {
		return fmt.Errorf("deleting answer %s: %w", answerID, err)
	}

	return nil
}

// DeleteComment removes a single comment. Comments are leaves in the
// deletion graph, so there is nothing to cascade to.
func DeleteComment(db *gorm.DB, commentID, actorID, reason string) error {
	var comment models.Comment
	if err := db.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("loading comment %s: %w", commentID, err)
	}

	if comment.IsDeleted {
		return nil
	}

	if err := markDeleted(db.Model(&models.Comment{}).Where("id = ?", commentID), actorID, reason, time.Now()); err != nil {
		return fmt.Errorf("deleting comment %s: %w", commentID, err)
	}

	return nil
}

// markDeleted stamps soft-delete audit fields on every matching row that is
// not deleted yet. The is_deleted guard is what makes cascades idempotent:
// a second pass affects zero rows instead of overwriting deleted_at or
// deleted_by.
func markDeleted(query *gorm.DB, actorID, reason string, now time.Time) error {
	return query.Where("is_deleted = ?", false).Updates(map[string]interface{}{
		"is_deleted":      true,
		"deleted_at":      now,
		"deleted_by":      actorID,
		"deletion_reason": reason,
	}).Error
}

// LiveAnswerCount counts non-deleted answers under a post. Counts are
// always derived like this rather than kept as stored counters, so a
// cascade can never leave them drifting.
func LiveAnswerCount(db *gorm.DB, postID string) (int64, error) {
	var count int64
	err := db.Model(&models.Answer{}).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Count(&count).Error
	return count, err
}

// LiveCommentCount counts non-deleted comments under an answer.
func LiveCommentCount(db *gorm.DB, answerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Comment{}).
		Where("answer_id = ? AND is_deleted = ?", answerID, false).
		Count(&count).Error
	return count, err
}

// LiveLikeCount counts likes on a content item.
func LiveLikeCount(db *gorm.DB, targetType models.ContentType, targetID string) (int64, error) {
	var count int64
	err := db.Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}
