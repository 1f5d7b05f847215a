package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// sign 构造一个HS256签名的测试Token
// 签名密钥随意:客户端侧只做免验证解析,不校验签名
func sign(t *testing.T, claims jwtlib.RegisteredClaims) string {
	t.Helper()
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := sign(t, jwtlib.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwtlib.NewNumericDate(exp),
	})

	got, ok := ExpiresAt(token)
	if !ok {
		t.Fatal("携带exp的JWT应可读取过期时间")
	}
	if !got.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", got, exp)
	}
}

func TestExpiresAtWithoutClaim(t *testing.T) {
	token := sign(t, jwtlib.RegisteredClaims{Subject: "user@example.com"})

	if _, ok := ExpiresAt(token); ok {
		t.Error("没有exp声明时应返回ok=false")
	}
}

func TestExpiresAtOpaqueToken(t *testing.T) {
	if _, ok := ExpiresAt("tok-not-a-jwt"); ok {
		t.Error("非JWT形态的Token应按不透明凭证处理")
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past := sign(t, jwtlib.RegisteredClaims{ExpiresAt: jwtlib.NewNumericDate(now.Add(-time.Hour))})
	future := sign(t, jwtlib.RegisteredClaims{ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour))})

	if !Expired(past, now) {
		t.Error("过期Token应判定为已过期")
	}
	if Expired(future, now) {
		t.Error("未过期Token不应判定为已过期")
	}
	// "无法判断"不等于"已过期":不透明凭证放行,交给后端裁决
	if Expired("tok-opaque", now) {
		t.Error("不透明凭证不应判定为已过期")
	}
}
