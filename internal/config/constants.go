// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "lms-progress"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultQuizLockout    = 24 * time.Hour
	DefaultQueryTimeout   = 5 * time.Second
	DefaultSlowThreshold  = 500 * time.Millisecond
	DefaultAccessTokenTTL = 24 * time.Hour
)
