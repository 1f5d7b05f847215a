package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appadmin "github.com/xiebiao/bookshop-client/internal/application/admin"
	appbook "github.com/xiebiao/bookshop-client/internal/application/book"
	apporder "github.com/xiebiao/bookshop-client/internal/application/order"
	appsession "github.com/xiebiao/bookshop-client/internal/application/session"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/api"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/config"
	"github.com/xiebiao/bookshop-client/internal/infrastructure/tokenstore"
	"github.com/xiebiao/bookshop-client/internal/interface/cli"
)

var (
	flagConfig string
	flagAPIURL string
)

// main 主程序入口
// 说明:手动依赖注入(wire.go提供等价的Wire装配,供生成代码使用)
func main() {
	root := &cobra.Command{
		Use:           "bookshop",
		Short:         "terminal storefront client for the bookstore API",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.Flags().StringVar(&flagConfig, "config", "", "config file path (defaults to ./config/config.yaml)")
	root.Flags().StringVar(&flagAPIURL, "api-url", "", "override the API base URL")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// 1. 加载配置
	cfg, err := config.LoadFile(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}

	// 2. 依赖注入(手动组装)
	// 依赖链:TokenStore ← SessionStore ← APIClient ← UseCases ← Shell
	tokenPath, err := cfg.TokenPath()
	if err != nil {
		return err
	}
	tokens := tokenstore.New(tokenPath)
	sessions := appsession.NewStore(tokens)
	apiClient := api.NewClient(cfg, sessions)

	uc := cli.UseCases{
		Login:          appsession.NewLoginUseCase(apiClient, sessions, tokens),
		Register:       appsession.NewRegisterUseCase(apiClient),
		Logout:         appsession.NewLogoutUseCase(sessions, tokens),
		Restore:        appsession.NewRestoreUseCase(apiClient, sessions, tokens),
		LoadCatalog:    appbook.NewLoadCatalogUseCase(apiClient),
		Buy:            appbook.NewBuyBookUseCase(apiClient),
		ListOrders:     apporder.NewListOrdersUseCase(apiClient),
		RequestPayment: apporder.NewRequestPaymentUseCase(apiClient),
		ConfirmPayment: apporder.NewConfirmPaymentUseCase(apiClient),
		AdminList:      appadmin.NewListBooksUseCase(apiClient, sessions),
		AdminEdit:      appadmin.NewEditBookUseCase(apiClient, sessions),
		AdminSave:      appadmin.NewSaveBookUseCase(apiClient, sessions),
		AdminDelete:    appadmin.NewDeleteBookUseCase(apiClient, sessions),
	}

	// 3. 启动交互循环
	shell := cli.New(sessions, uc, os.Stdin, os.Stdout)
	return shell.Run(context.Background())
}
