package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/tokenstore"
	"github.com/xiebiao/bookshop-client/internal/testutil"
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

type env struct {
	fb       *testutil.FakeBackend
	tokens   *tokenstore.Store
	sessions *Store
	client   *api.Client
}

func newEnv(t *testing.T) *env {
	t.Helper()
	fb := testutil.NewFakeBackend()
	t.Cleanup(fb.Close)

	tokens := tokenstore.New(filepath.Join(t.TempDir(), "token"))
	sessions := NewStore(tokens)
	client := api.NewClient(fb.Config(), sessions)
	return &env{fb: fb, tokens: tokens, sessions: sessions, client: client}
}

func TestLoginSuccess(t *testing.T) {
	e := newEnv(t)
	want := e.fb.AddUser("admin@example.com", "s3cret", "Shop Admin", true)
	login := NewLoginUseCase(e.client, e.sessions, e.tokens)

	sess, err := login.Execute(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	assert.True(t, sess.Authenticated)
	assert.True(t, sess.Admin, "角色来自/auth/me的is_superuser")
	assert.Equal(t, "Shop Admin", sess.DisplayName)

	// 会话存储与Token持久化同步更新
	assert.Equal(t, want, e.sessions.Token())
	stored, err := e.tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, want, stored)
}

func TestLoginBadCredentials(t *testing.T) {
	e := newEnv(t)
	e.fb.AddUser("reader@example.com", "s3cret", "Avid Reader", false)
	login := NewLoginUseCase(e.client, e.sessions, e.tokens)

	sess, err := login.Execute(context.Background(), "reader@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "incorrect email or password", apperrors.GetAppError(err).Message)
	assert.False(t, sess.Authenticated)
	assert.False(t, e.sessions.Current().Authenticated)
}

func TestLoginEmptyInput(t *testing.T) {
	e := newEnv(t)
	login := NewLoginUseCase(e.client, e.sessions, e.tokens)

	_, err := login.Execute(context.Background(), "  ", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, e.fb.RequestCount(), "本地校验失败不应发起网络请求")
}

func TestRestoreWithoutToken(t *testing.T) {
	e := newEnv(t)
	restore := NewRestoreUseCase(e.client, e.sessions, e.tokens)

	sess, err := restore.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, sess.Authenticated, "无持久化凭证⇒匿名会话,不是错误")
	assert.Zero(t, e.fb.RequestCount())
}

func TestRestoreValidToken(t *testing.T) {
	e := newEnv(t)
	e.fb.AddToken("tok-restored", "reader@example.com", false)
	require.NoError(t, e.tokens.Save("tok-restored"))
	restore := NewRestoreUseCase(e.client, e.sessions, e.tokens)

	sess, err := restore.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "reader@example.com", sess.DisplayName)
	assert.Equal(t, "tok-restored", e.sessions.Token())
}

func TestRestoreExpiredJWTSkipsNetwork(t *testing.T) {
	e := newEnv(t)
	expired, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, e.tokens.Save(expired))
	restore := NewRestoreUseCase(e.client, e.sessions, e.tokens)

	sess, err := restore.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, sess.Authenticated)
	assert.Zero(t, e.fb.RequestCount(), "本地可判定过期时省掉必然失败的网络往返")

	// 失效凭证同时被清除
	stored, err := e.tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRestoreRejectedToken(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.tokens.Save("tok-unknown"))
	restore := NewRestoreUseCase(e.client, e.sessions, e.tokens)

	// 后端拒绝(401)⇒静默匿名,绝不崩溃
	sess, err := restore.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, sess.Authenticated)

	stored, err := e.tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored, "被拒绝的凭证应被清除")
}

func TestRestoreOffline(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.tokens.Save("tok-maybe-valid"))
	e.fb.Close()
	restore := NewRestoreUseCase(e.client, e.sessions, e.tokens)

	sess, err := restore.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
	assert.False(t, sess.Authenticated)

	// 离线不等于登出:持久化凭证保留,下次启动重试
	stored, loadErr := e.tokens.Load()
	require.NoError(t, loadErr)
	assert.Equal(t, "tok-maybe-valid", stored)
}

func TestLogout(t *testing.T) {
	e := newEnv(t)
	e.fb.AddUser("reader@example.com", "s3cret", "Avid Reader", false)
	login := NewLoginUseCase(e.client, e.sessions, e.tokens)
	_, err := login.Execute(context.Background(), "reader@example.com", "s3cret")
	require.NoError(t, err)

	before := e.fb.RequestCount()
	logout := NewLogoutUseCase(e.sessions, e.tokens)
	require.NoError(t, logout.Execute())

	// 纯客户端动作:不发网络请求,会话与持久化凭证同时清除
	assert.Equal(t, before, e.fb.RequestCount())
	assert.False(t, e.sessions.Current().Authenticated)
	assert.Empty(t, e.sessions.Token())

	stored, err := e.tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRegisterThenLogin(t *testing.T) {
	e := newEnv(t)
	register := NewRegisterUseCase(e.client)

	err := register.Execute(context.Background(), "New Reader", "new@example.com", "pw123")
	require.NoError(t, err)

	// 注册成功不自动登录
	assert.False(t, e.sessions.Current().Authenticated)

	login := NewLoginUseCase(e.client, e.sessions, e.tokens)
	sess, err := login.Execute(context.Background(), "new@example.com", "pw123")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	assert.False(t, sess.Admin, "注册产出的账号不具备管理员角色")
	assert.Equal(t, "New Reader", sess.DisplayName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)
	e.fb.AddUser("taken@example.com", "pw", "Existing", false)
	register := NewRegisterUseCase(e.client)

	err := register.Execute(context.Background(), "Someone", "taken@example.com", "pw123")
	require.Error(t, err)
	assert.Equal(t, "a user with this email already exists", apperrors.GetAppError(err).Message)
}

func TestRegisterInvalidInput(t *testing.T) {
	e := newEnv(t)
	register := NewRegisterUseCase(e.client)

	err := register.Execute(context.Background(), "Someone", "not-an-email", "pw123")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = register.Execute(context.Background(), "Someone", "a@b.com", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	assert.Zero(t, e.fb.RequestCount())
}
