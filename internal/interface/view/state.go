package view

import (
	apperrors "github.com/xiebiao/bookshop-client/pkg/errors"
)

// 会话/视图状态机
// 设计说明:
// 1. 把散落在各事件处理器里的"全部隐藏再显示某个"逻辑收敛为
//    显式有限状态机:枚举状态 + 单一Apply派发函数
// 2. 可见性从状态推导(Visible),不存在需要手工同步的显隐标志
// 3. 状态机只做决策不做IO:导航需要刷新哪个目的地由Apply的返回值
//    告知调用方,由交互层执行实际拉取

// State 认证状态
type State int

const (
	StateUnauthenticated State = iota // 仅认证区可见
	StateAuthenticated                // 目录/订单可见,管理区按角色开放
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Section 当前选中的版块
// 认证后默认是Dashboard(目录+订单双栏);目录/订单可单独导航;
// 管理区是排他的第三层,进入后其余版块全部隐藏
type Section int

const (
	SectionAuth Section = iota
	SectionDashboard
	SectionCatalog
	SectionOrders
	SectionAdmin
)

func (s Section) String() string {
	switch s {
	case SectionDashboard:
		return "dashboard"
	case SectionCatalog:
		return "catalog"
	case SectionOrders:
		return "orders"
	case SectionAdmin:
		return "admin"
	default:
		return "auth"
	}
}

// Region 可见性查询的目标区域
type Region int

const (
	RegionAuth Region = iota
	RegionCatalog
	RegionOrders
	RegionAdmin
)

// EventKind 状态机事件类别
type EventKind int

const (
	EventLoggedIn  EventKind = iota // 登录或Token恢复成功
	EventLoggedOut                  // 显式登出
	EventNavigate                   // 版块导航
)

// Event 状态机事件
type Event struct {
	Kind   EventKind
	Admin  bool    // EventLoggedIn:会话是否具有管理员角色
	Target Section // EventNavigate:目的版块
}

// Refresh 事件处理后需要执行的数据刷新
type Refresh int

const (
	RefreshNone      Refresh = iota
	RefreshDashboard         // 目录+订单都要刷新(登录后的初次加载)
	RefreshOrders
	RefreshAdmin
)

// 状态机错误定义
var (
	// ErrAlreadyAuthenticated 每个会话只允许一次认证转换
	ErrAlreadyAuthenticated = apperrors.New(apperrors.ErrCodeInvalidParams, "already signed in")

	// ErrNotAuthenticated 未认证状态下不允许导航/登出
	ErrNotAuthenticated = apperrors.ErrUnauthorized
)

// Model 视图模型
type Model struct {
	state   State
	section Section
	admin   bool
}

// NewModel 初始模型:未认证,仅认证区可见
func NewModel() *Model {
	return &Model{state: StateUnauthenticated, section: SectionAuth}
}

func (m *Model) State() State     { return m.state }
func (m *Model) Section() Section { return m.section }
func (m *Model) Admin() bool      { return m.admin }

// Visible 区域可见性(完全由状态推导)
// 不变量:
// - 未认证 ⇒ 仅认证区可见
// - Dashboard ⇒ 目录与订单同时可见(双栏)
// - 其余版块互斥,同一时刻只有一个可见
func (m *Model) Visible(r Region) bool {
	if m.state == StateUnauthenticated {
		return r == RegionAuth
	}
	switch m.section {
	case SectionDashboard:
		return r == RegionCatalog || r == RegionOrders
	case SectionCatalog:
		return r == RegionCatalog
	case SectionOrders:
		return r == RegionOrders
	case SectionAdmin:
		return r == RegionAdmin
	default:
		return false
	}
}

// Apply 单一事件派发入口
// 返回事件引发的刷新目标;非法转换返回错误且模型保持不变
func (m *Model) Apply(e Event) (Refresh, error) {
	switch e.Kind {
	case EventLoggedIn:
		// 未认证→已认证每个会话只发生一次(登录或Token恢复)
		if m.state == StateAuthenticated {
			return RefreshNone, ErrAlreadyAuthenticated
		}
		m.state = StateAuthenticated
		m.admin = e.Admin
		m.section = SectionDashboard
		return RefreshDashboard, nil

	case EventLoggedOut:
		// 回到未认证只通过显式登出;视图等价于一次全新启动
		if m.state == StateUnauthenticated {
			return RefreshNone, ErrNotAuthenticated
		}
		m.state = StateUnauthenticated
		m.section = SectionAuth
		m.admin = false
		return RefreshNone, nil

	case EventNavigate:
		if m.state == StateUnauthenticated {
			return RefreshNone, ErrNotAuthenticated
		}
		switch e.Target {
		case SectionAdmin:
			if !m.admin {
				return RefreshNone, apperrors.ErrForbidden
			}
			m.section = SectionAdmin
			return RefreshAdmin, nil
		case SectionOrders:
			m.section = SectionOrders
			return RefreshOrders, nil
		case SectionCatalog:
			// 目录导航不触发重新拉取,过滤与展示走本地缓存
			m.section = SectionCatalog
			return RefreshNone, nil
		case SectionDashboard:
			m.section = SectionDashboard
			return RefreshDashboard, nil
		default:
			return RefreshNone, apperrors.ErrInvalidParams
		}

	default:
		return RefreshNone, apperrors.ErrInvalidParams
	}
}
