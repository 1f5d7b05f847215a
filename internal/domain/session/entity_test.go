package session

import "testing"

func TestProfileDisplayName(t *testing.T) {
	// full_name缺省时回退到邮箱
	p := Profile{Email: "reader@example.com"}
	if got := p.DisplayName(); got != "reader@example.com" {
		t.Errorf("DisplayName() = %q", got)
	}

	p.FullName = "Avid Reader"
	if got := p.DisplayName(); got != "Avid Reader" {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestNewAuthenticated(t *testing.T) {
	s := NewAuthenticated("tok-123", Profile{Email: "admin@example.com", Admin: true})

	if !s.Authenticated {
		t.Error("工厂产出的会话应为已认证状态")
	}
	if s.Token != "tok-123" || !s.Admin || s.DisplayName != "admin@example.com" {
		t.Errorf("会话字段不完整: %+v", s)
	}
}

func TestAnonymous(t *testing.T) {
	s := Anonymous()
	if s.Authenticated || s.Admin || s.Token != "" {
		t.Errorf("匿名会话应为零值: %+v", s)
	}
}
