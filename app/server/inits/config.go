package inits

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"io/fs"
	"krishi-sathi/app/server/config"
	"krishi-sathi/app/server/constants"
	"os"
	"strings"
	"time"
)

func Config() (*config.Config, error) {
	// .env 文件是可选的，存在时先载入（不会覆盖已有的环境变量）
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg config.Config

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":3000" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if frontend, exist := os.LookupEnv("FRONTEND_URL"); !exist {
		cfg.System.FrontendURL = "http://localhost:5173"
	} else {
		cfg.System.FrontendURL = frontend
	}

	if timeoutStr, exist := os.LookupEnv("STORE_TIMEOUT"); !exist {
		cfg.System.StoreTimeout = constants.AuthStoreTimeout
	} else if timeout, err := time.ParseDuration(timeoutStr); err != nil || timeout <= 0 {
		return nil, fmt.Errorf("STORE_TIMEOUT should be a positive duration")
	} else {
		cfg.System.StoreTimeout = timeout
	}

	if encsk, exist := os.LookupEnv("ENCRYPT_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("ENCRYPT_SECRET_KEY environment variable not set")
	} else if len(encsk) != 32 {
		return nil, fmt.Errorf("ENCRYPT_SECRET_KEY should be 32 bytes long")
	} else {
		cfg.Security.EncryptSecretKey = encsk
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist || sigsk == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	// 初始管理员是可选的，但一旦设置就必须完整有效
	adminEmail, emailExist := os.LookupEnv("ADMIN_EMAIL")
	adminPassword, passwordExist := os.LookupEnv("ADMIN_PASSWORD")
	if emailExist || passwordExist {
		adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))
		if err := validator.New().Var(adminEmail, "required,email"); err != nil {
			return nil, fmt.Errorf("ADMIN_EMAIL should be a valid email address")
		}
		if len(adminPassword) < constants.PasswordMinLength {
			return nil, fmt.Errorf("ADMIN_PASSWORD should be at least %d characters long", constants.PasswordMinLength)
		}
		cfg.Admin.Email = adminEmail
		cfg.Admin.Password = adminPassword
	}

	return &cfg, nil
}
