package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrEmptyKeywords      = fmt.Errorf("no split keywords have been found")
	ErrOnlyKeywordFiles   = fmt.Errorf("keywords directory contains directories")
	ErrStoryNotFound      = fmt.Errorf("story not found")
	ErrEpicNotFound       = fmt.Errorf("epic not found")
	ErrInvalidStatus      = fmt.Errorf("unknown board status")
	ErrInvalidStory       = fmt.Errorf("invalid story payload")
	ErrAttachmentRejected = fmt.Errorf("attachment type is not allowed")
	ErrUnknownAgent       = fmt.Errorf("unknown agent persona")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)
