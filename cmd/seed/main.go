package main

import (
	"github.com/creamery-next/internal/config"
	"github.com/creamery-next/internal/constants"
	"github.com/creamery-next/internal/logger"
	"github.com/creamery-next/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加容器类型
	types := []models.IceCreamType{
		{Name: "Cup", Slug: "cup", MaxScoops: 7},
		{Name: "Cone", Slug: "cone", MaxScoops: 3},
	}
	for _, t := range types {
		var existing models.IceCreamType
		if err := models.DB.Where("slug = ?", t.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&t).Error; err != nil {
				stdLog.Printf("Failed to create ice cream type %s: %v", t.Slug, err)
			} else {
				stdLog.Printf("Created ice cream type: %s", t.Slug)
			}
		} else {
			stdLog.Printf("Ice cream type already exists: %s", t.Slug)
		}
	}

	// 添加口味（单球价格）
	flavourPrice := models.NewMoneyFromDecimal(decimal.NewFromFloat(1.50))
	flavours := []models.IceCreamFlavour{
		{Name: "Vanilla", Price: flavourPrice},
		{Name: "Chocolate", Price: flavourPrice},
		{Name: "Strawberry", Price: flavourPrice},
		{Name: "Mint", Price: flavourPrice},
		{Name: "Pistachio", Price: flavourPrice},
	}
	for _, f := range flavours {
		var existing models.IceCreamFlavour
		if err := models.DB.Where("name = ?", f.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&f).Error; err != nil {
				stdLog.Printf("Failed to create flavour %s: %v", f.Name, err)
			} else {
				stdLog.Printf("Created flavour: %s", f.Name)
			}
		} else {
			stdLog.Printf("Flavour already exists: %s", f.Name)
		}
	}

	// 添加配料（单份价格）
	mixinPrice := models.NewMoneyFromDecimal(decimal.NewFromFloat(0.50))
	mixins := []models.IceCreamMixin{
		{Name: "Sprinkles", Price: mixinPrice},
		{Name: "Chocolate Chips", Price: mixinPrice},
		{Name: "Oreos", Price: mixinPrice},
		{Name: "Gummy Bears", Price: mixinPrice},
		{Name: "Peanuts", Price: mixinPrice},
	}
	for _, m := range mixins {
		var existing models.IceCreamMixin
		if err := models.DB.Where("name = ?", m.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&m).Error; err != nil {
				stdLog.Printf("Failed to create mixin %s: %v", m.Name, err)
			} else {
				stdLog.Printf("Created mixin: %s", m.Name)
			}
		} else {
			stdLog.Printf("Mixin already exists: %s", m.Name)
		}
	}

	// 添加演示用户
	users := []struct {
		Name     string
		Email    string
		Password string
		Role     string
	}{
		{Name: "Demo Customer", Email: "user@app.com", Password: "password123", Role: constants.RoleCustomer},
		{Name: "Administrator", Email: "admin@app.com", Password: "admin123", Role: constants.RoleAdmin},
	}
	for _, u := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", u.Email).First(&existing).Error; err != nil {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if hashErr != nil {
				stdLog.Printf("Failed to hash password for %s: %v", u.Email, hashErr)
				continue
			}
			user := models.User{
				Name:         u.Name,
				Email:        u.Email,
				PasswordHash: string(hash),
				Role:         u.Role,
				Status:       constants.UserStatusActive,
			}
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", u.Email, err)
			} else {
				stdLog.Printf("Created user: %s (%s)", u.Email, u.Role)
			}
		} else {
			stdLog.Printf("User already exists: %s", u.Email)
		}
	}

	stdLog.Println("Seed completed")
}
