package services

import "errors"

// 业务错误，控制器通过 errors.Is 映射到错误码
var (
	ErrSiteNotFound      = errors.New("site not found")
	ErrOfficerNotFound   = errors.New("officer not found")
	ErrPhotoNotFound     = errors.New("photo not found")
	ErrPhotoTooLarge     = errors.New("photo exceeds the size limit")
	ErrPhotoUnsupported  = errors.New("unsupported photo format")
	ErrPhraseBankMissing = errors.New("phrase bank file not found")
	ErrPhraseBankInvalid = errors.New("phrase bank must contain a list")
)

// ValidationError carries a user-facing message for invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
