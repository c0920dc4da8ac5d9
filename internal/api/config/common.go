package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
	Challenge ChallengeConfig `mapstructure:"challenge"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	AvatarBucket string `mapstructure:"avatar_bucket"`
	UseSSL       bool   `mapstructure:"use_ssl"`
}

type KafkaConfig struct {
	Brokers          []string   `mapstructure:"brokers"`
	AchievementTopic string     `mapstructure:"achievement_topic"`
	Sasl             SaslConfig `mapstructure:"sasl"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// TelegramConfig 机器人平台接口配置
type TelegramConfig struct {
	APIBase  string `mapstructure:"api_base"`
	BotToken string `mapstructure:"bot_token"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// ChallengeConfig 挑战赛规则相关配置
type ChallengeConfig struct {
	DefaultTimezone string `mapstructure:"default_timezone"`
}
