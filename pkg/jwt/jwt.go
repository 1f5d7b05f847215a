package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 客户端侧的Token检视工具
// 设计说明：
// 1. 客户端不持有签名密钥，无法（也不应）验证签名——签名验证是后端的职责
// 2. 这里只做"免验证解析"：读取exp声明，用于会话恢复时的本地预检
// 3. Token对客户端整体上是不透明凭证：解析失败不算错误，按"无法判断"处理

// ExpiresAt 免验证解析Token的过期时间
// 返回值：
// - (过期时间, true)：Token是携带exp声明的JWT
// - (零值, false)：Token不是JWT或没有exp声明（视为不透明凭证）
func ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired 判断Token是否已确定过期
// 注意：对不透明凭证（非JWT）返回false——"无法判断"不等于"已过期"，
// 最终有效性仍以后端/auth/me的响应为准
func Expired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	if !ok {
		return false
	}
	return now.After(exp)
}
