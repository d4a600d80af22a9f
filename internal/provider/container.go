package provider

import (
	"github.com/creamery-next/internal/authz"
	"github.com/creamery-next/internal/cache"
	"github.com/creamery-next/internal/config"
	"github.com/creamery-next/internal/logger"
	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/queue"
	"github.com/creamery-next/internal/repository"
	"github.com/creamery-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo         repository.UserRepository
	UserLoginLogRepo repository.UserLoginLogRepository
	TypeRepo         repository.IceCreamTypeRepository
	FlavourRepo      repository.IceCreamFlavourRepository
	MixinRepo        repository.IceCreamMixinRepository
	CartRepo         repository.CartRepository
	OrderRepo        repository.OrderRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	UserAdminService    *service.UserAdminService
	EmailService        *service.EmailService
	CaptchaService      *service.CaptchaService
	CatalogService      *service.CatalogService
	CartService         *service.CartService
	OrderService        *service.OrderService
	UserLoginLogService *service.UserLoginLogService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.UserLoginLogRepo = repository.NewUserLoginLogRepository(db)
	c.TypeRepo = repository.NewIceCreamTypeRepository(db)
	c.FlavourRepo = repository.NewIceCreamFlavourRepository(db)
	c.MixinRepo = repository.NewIceCreamMixinRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserAdminService = service.NewUserAdminService(c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.TypeRepo, c.FlavourRepo, c.MixinRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.TypeRepo, c.FlavourRepo, c.MixinRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.TypeRepo, c.FlavourRepo, c.MixinRepo, c.QueueClient)
	c.UserLoginLogService = service.NewUserLoginLogService(c.UserLoginLogRepo)
}
