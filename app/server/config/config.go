package config

import "time"

type Config struct {
	System struct {
		IsProd                bool          // 是否为生产环境
		Listen                string        // 监听地址
		DBConnectionString    string        // Postgres 数据库的连接字符串
		RedisConnectionString string        // Redis 数据库的连接字符串
		FrontendURL           string        // 前端地址，用于 CORS 和 websocket 来源校验
		StoreTimeout          time.Duration // 会话校验时查询用户的超时
	}
	Security struct {
		EncryptSecretKey   string // 加密密钥，用于加密数据库中的敏感信息（例如手机号），长度必须为 32 字节，设定后不能更改
		SignatureSecretKey string // 签名密钥，用于产生签名（例如 JWT ），更新会导致旧有会话失效
	}
	Admin struct {
		// 数据库中还没有任何用户时，用于创建第一个管理员，之后不再读取
		Email    string
		Password string
	}
}
