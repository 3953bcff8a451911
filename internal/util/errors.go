package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrAlreadySubmitted    = errors.New("assessment already submitted")
	ErrInvalidRepoURL      = errors.New("a valid GitHub URL is required")
	ErrNotPDF              = errors.New("only PDF files are accepted")
	ErrNoResumeFile        = errors.New("no resume file provided")
	ErrWeakPassword        = errors.New("password must be at least 8 characters with an uppercase letter and a digit")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrShortName           = errors.New("full name must be at least 2 characters")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrMissingProfile      = errors.New("college, branch and careerInterest are required")
)
