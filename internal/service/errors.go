package service

import "errors"

var (
	// ErrSelfSwipe is returned when a user attempts to record a decision
	// about their own profile.
	ErrSelfSwipe = errors.New("cannot swipe on own profile")

	// ErrInvalidSwipeAction is returned when a swipe carries an action
	// other than like or dislike.
	ErrInvalidSwipeAction = errors.New("invalid swipe action")
)
