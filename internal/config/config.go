// internal/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Name        string        `mapstructure:"name"`
	QuizLockout time.Duration `mapstructure:"quiz_lockout"`
}

type DatabaseConfig struct {
	URL           string        `mapstructure:"url"`
	QueryTimeout  time.Duration `mapstructure:"query_timeout"`
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
	AutoMigrate   bool          `mapstructure:"auto_migrate"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App  AppConfig `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
		// 公開登録APIで講師ロールを許可するか。既定では player のみ
		AllowInstructorSignup bool `mapstructure:"allow_instructor_signup"`
	} `mapstructure:"auth"`
	JWT JWTConfig `mapstructure:"jwt"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS CORSConfig `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば環境変数として読み込む (なくてもエラーにしない)
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment variables from .env")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// APP_DATABASE_URL → database.url のように対応させる
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)

	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Quiz Lockout: %s", Cfg.App.QuizLockout)
	log.Printf("Query Timeout: %s", Cfg.Database.QueryTimeout)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Instructor Signup Allowed: %t", Cfg.Auth.AllowInstructorSignup)

	return nil
}

// applyDefaults は未設定の項目にデフォルト値を設定します
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.App.Name == "" {
		cfg.App.Name = AppName
	}
	if cfg.App.QuizLockout <= 0 {
		log.Printf("Quiz lockout not set or invalid, using default '%s'", DefaultQuizLockout)
		cfg.App.QuizLockout = DefaultQuizLockout
	}
	if cfg.Database.QueryTimeout <= 0 {
		log.Printf("Query timeout not set or invalid, using default '%s'", DefaultQueryTimeout)
		cfg.Database.QueryTimeout = DefaultQueryTimeout
	}
	if cfg.Database.SlowThreshold <= 0 {
		cfg.Database.SlowThreshold = DefaultSlowThreshold
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-User-ID", "X-User-Role"}
	}
}
