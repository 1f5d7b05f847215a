//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 运行 `wire gen ./cmd/bookshop` 生成wire_gen.go;
// main.go中的手动组装与这里的Provider集合保持一致

package main

import (
	"os"

	"github.com/google/wire"

	appadmin "github.com/xiebiao/bookshop-client/internal/application/admin"
	appbook "github.com/xiebiao/bookshop-client/internal/application/book"
	apporder "github.com/xiebiao/bookshop-client/internal/application/order"
	appsession "github.com/xiebiao/bookshop-client/internal/application/session"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/config"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/tokenstore"
	"github.com/xiebiao/bookshop-client/internal/interface/cli"
)

// infrastructureSet 基础设施层依赖
// 包含:配置加载、Token持久化、API网关客户端
var infrastructureSet = wire.NewSet(
	config.Load,
	provideTokenStore,
	api.NewClient,
	wire.Bind(new(api.TokenSource), new(*appsession.Store)),
)

// sessionSet 会话层依赖
var sessionSet = wire.NewSet(
	appsession.NewStore,
	appsession.NewLoginUseCase,
	appsession.NewRegisterUseCase,
	appsession.NewLogoutUseCase,
	appsession.NewRestoreUseCase,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewLoadCatalogUseCase,
	appbook.NewBuyBookUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewRequestPaymentUseCase,
	apporder.NewConfirmPaymentUseCase,
	appadmin.NewListBooksUseCase,
	appadmin.NewEditBookUseCase,
	appadmin.NewSaveBookUseCase,
	appadmin.NewDeleteBookUseCase,
)

// provideTokenStore Token存储需要从配置解析最终落盘路径
func provideTokenStore(cfg *config.Config) (*tokenstore.Store, error) {
	path, err := cfg.TokenPath()
	if err != nil {
		return nil, err
	}
	return tokenstore.New(path), nil
}

// provideShell 外壳绑定标准输入输出
func provideShell(sessions *appsession.Store, uc cli.UseCases) *cli.Shell {
	return cli.New(sessions, uc, os.Stdin, os.Stdout)
}

// InitializeShell 初始化整个应用
func InitializeShell() (*cli.Shell, error) {
	wire.Build(
		infrastructureSet,
		sessionSet,
		applicationSet,
		wire.Struct(new(cli.UseCases), "*"),
		provideShell,
	)
	return nil, nil
}
