package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于程序判断错误类别（不直接等同于HTTP状态码）
// 2. Message是展示给用户的提示信息（来自后端detail字段或本地生成）
// 3. Err是底层错误（网络错误、解析错误等），仅用于日志，不展示给用户
// 4. HTTPStatus记录后端返回的原始状态码（非HTTP来源的错误为0）
type AppError struct {
	Code       int    `json:"code"`    // 业务错误码
	Message    string `json:"message"` // 用户友好的错误提示
	HTTPStatus int    `json:"-"`       // 后端HTTP状态码（仅ApiError类错误有值）
	Err        error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如JSON解析错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapNetwork 包装传输层错误（超时、DNS解析失败、连接拒绝）
// 设计说明：网络错误是唯一允许穿透网关边界的传输错误形态，
// 调用方据此提示"请检查网络"而非展示后端业务消息
func WrapNetwork(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewAPI 根据后端非2xx响应创建ApiError
// 规则：401/403归入认证授权类错误码，其余按通用API错误处理
func NewAPI(status int, detail string) *AppError {
	code := ErrCodeAPIError
	switch status {
	case 401:
		code = ErrCodeUnauthorized
	case 403:
		code = ErrCodeForbidden
	}
	return &AppError{
		Code:       code,
		Message:    detail,
		HTTPStatus: status,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 请求方错误（认证失败、参数校验失败、后端拒绝）
// - 5xxxx: 环境错误（网络不可达、内部异常）

const (
	// 系统级错误码（50000-50399）
	ErrCodeInternal = 50000 // 内部错误
	ErrCodeNetwork  = 50300 // 网络传输错误（超时/DNS/连接拒绝）

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized   = 40100 // 未登录或Token失效
	ErrCodeTokenExpired   = 40102 // Token过期
	ErrCodeBadCredentials = 40103 // 邮箱或密码错误
	ErrCodeForbidden      = 40104 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound      = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound  = 40402 // 图书不存在
	ErrCodeOrderNotFound = 40403 // 订单不存在

	// 业务规则错误（40000-40099）
	ErrCodeAPIError           = 40000 // 后端返回的业务错误(通用)
	ErrCodeInvalidOrderStatus = 40002 // 订单状态不允许此操作

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 本地参数校验失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal = New(ErrCodeInternal, "internal error")
	ErrNetwork  = New(ErrCodeNetwork, "network error, please check your connection")

	// 认证授权
	ErrUnauthorized   = New(ErrCodeUnauthorized, "please sign in first")
	ErrTokenExpired   = New(ErrCodeTokenExpired, "session expired, please sign in again")
	ErrBadCredentials = New(ErrCodeBadCredentials, "incorrect email or password")
	ErrForbidden      = New(ErrCodeForbidden, "admin privileges required")

	// 资源不存在
	ErrBookNotFound  = New(ErrCodeBookNotFound, "book not found")
	ErrOrderNotFound = New(ErrCodeOrderNotFound, "order not found")

	// 业务规则
	ErrInvalidOrderStatus = New(ErrCodeInvalidOrderStatus, "order status does not allow this operation")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "invalid input")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal error")
}

// IsAuth 判断是否为认证授权类错误（40100-40199）
func IsAuth(err error) bool {
	appErr := GetAppError(err)
	return appErr.Code >= 40100 && appErr.Code < 40200
}

// IsNetwork 判断是否为网络传输错误
// 用途：调用方区分"离线"与"未登录"两种情况
func IsNetwork(err error) bool {
	return GetAppError(err).Code == ErrCodeNetwork
}

// IsValidation 判断是否为本地参数校验错误（未发起网络请求）
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	return appErr.Code >= 40900 && appErr.Code < 41000
}
