package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrEmptyComment    = errors.New("comment is required")
	ErrAlreadyReviewed = errors.New("product already reviewed by this user")
	ErrInvalidStatus   = errors.New("invalid review status")
	ErrEmptyReply      = errors.New("reply is required")
)
