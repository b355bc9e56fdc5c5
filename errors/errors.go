package errors

import "fmt"

var (
	ErrEmptyContent       = fmt.Errorf("post content is required and must be a non-empty string")
	ErrNotInitialized     = fmt.Errorf("engine has not been initialized")
	ErrEmptyBatch         = fmt.Errorf("batch contains no posts")
	ErrIntentNotSupported = fmt.Errorf("intent classification is not available for this language")
)
