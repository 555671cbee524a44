package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 已创建.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusRequestEntityTooLarge - 413: 请求体过大.
	StatusRequestEntityTooLarge = 413
	// StatusUnsupportedMediaType - 415: 不支持的媒体类型.
	StatusUnsupportedMediaType = 415
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrNotFound - 404: 资源不存在.
	ErrNotFound
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 站点相关错误码 (101xxx).
const (
	// ErrSiteNotFound - 404: 站点不存在.
	ErrSiteNotFound int = iota + 101000
	// ErrSiteInvalid - 400: 站点字段无效.
	ErrSiteInvalid
	// ErrRegistryUnavailable - 500: 站点注册表不可读写.
	ErrRegistryUnavailable
)

// 安保人员相关错误码 (102xxx).
const (
	// ErrOfficerNotFound - 404: 安保人员不存在.
	ErrOfficerNotFound int = iota + 102000
	// ErrOfficerInvalid - 400: 安保人员字段无效.
	ErrOfficerInvalid
	// ErrPhotoTooLarge - 413: 照片过大.
	ErrPhotoTooLarge
	// ErrPhotoUnsupported - 415: 照片格式不支持.
	ErrPhotoUnsupported
	// ErrPhotoNotFound - 404: 照片不存在.
	ErrPhotoNotFound
)

// 短语库相关错误码 (103xxx).
const (
	// ErrPhraseBankMissing - 500: 短语库文件不存在.
	ErrPhraseBankMissing int = iota + 103000
	// ErrPhraseBankInvalid - 500: 短语库格式错误.
	ErrPhraseBankInvalid
	// ErrPhraseInvalid - 400: 短语字段无效.
	ErrPhraseInvalid
)

// 存储相关错误码 (104xxx).
const (
	// ErrStorage - 500: 文件读写错误.
	ErrStorage int = iota + 104000
)
