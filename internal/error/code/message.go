package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "invalid request parameters",
	ErrNotFound:        "resource not found",
	ErrTooManyRequests: "too many requests, please retry later",

	// 站点相关错误码
	ErrSiteNotFound:        "site not found",
	ErrSiteInvalid:         "invalid site",
	ErrRegistryUnavailable: "site registry unavailable",

	// 安保人员相关错误码
	ErrOfficerNotFound:  "officer not found",
	ErrOfficerInvalid:   "invalid officer",
	ErrPhotoTooLarge:    "photo exceeds the size limit",
	ErrPhotoUnsupported: "unsupported photo format",
	ErrPhotoNotFound:    "photo not found",

	// 短语库相关错误码
	ErrPhraseBankMissing: "phrase bank file not found",
	ErrPhraseBankInvalid: "phrase bank must contain a list",
	ErrPhraseInvalid:     "invalid phrase",

	// 存储相关错误码
	ErrStorage: "data file read/write failed",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrNotFound:        StatusNotFound,
	ErrTooManyRequests: StatusTooManyRequests,

	// 站点相关错误码
	ErrSiteNotFound:        StatusNotFound,
	ErrSiteInvalid:         StatusBadRequest,
	ErrRegistryUnavailable: StatusInternalServerError,

	// 安保人员相关错误码
	ErrOfficerNotFound:  StatusNotFound,
	ErrOfficerInvalid:   StatusBadRequest,
	ErrPhotoTooLarge:    StatusRequestEntityTooLarge,
	ErrPhotoUnsupported: StatusUnsupportedMediaType,
	ErrPhotoNotFound:    StatusNotFound,

	// 短语库相关错误码
	ErrPhraseBankMissing: StatusInternalServerError,
	ErrPhraseBankInvalid: StatusInternalServerError,
	ErrPhraseInvalid:     StatusBadRequest,

	// 存储相关错误码
	ErrStorage: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
