package domain

import "errors"

var (
	ErrHandleRequired      = errors.New("agent handle is required")
	ErrUserNotFound        = errors.New("user not found")
	ErrIdentityResolution  = errors.New("unable to resolve agent user id")
	ErrGenerationRefused   = errors.New("agent refused to answer prompt")
	ErrEmptyGeneration     = errors.New("agent returned no text")
	ErrFetch               = errors.New("fetch posts")
	ErrPersistence         = errors.New("persist state")
	ErrNoEligibleContent   = errors.New("no eligible content found")
	ErrNoTopics            = errors.New("no topics configured")
	ErrTrackedUserNotFound = errors.New("tracked user not found")
)
