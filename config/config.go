package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Lottery  LotteryConfig  `mapstructure:"lottery"`
	VIP      VIPConfig      `mapstructure:"vip"`
	Draw     DrawConfig     `mapstructure:"draw"`
	Nonce    NonceConfig    `mapstructure:"nonce"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug, release, test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// ChainConfig configures the Solana RPC endpoint and the custodial wallet.
type ChainConfig struct {
	RPCURL              string        `mapstructure:"rpc_url"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	ConfirmTimeout      time.Duration `mapstructure:"confirm_timeout"`
	ConfirmPollInterval time.Duration `mapstructure:"confirm_poll_interval"`
	CustodialAddress    string        `mapstructure:"custodial_address"`
	CustodialKey        string        `mapstructure:"custodial_key"`      // base58 secret key
	CustodialKeyFile    string        `mapstructure:"custodial_key_file"` // solana-keygen JSON file
}

// LotteryConfig holds entry pricing in lamports.
type LotteryConfig struct {
	EntryLamports   uint64 `mapstructure:"entry_lamports"`
	FeeLamports     uint64 `mapstructure:"fee_lamports"`
	FeeAddress      string `mapstructure:"fee_address"` // empty = fee paid to custodial in a single transfer
	DailyDepositCap int64  `mapstructure:"daily_deposit_cap"`
}

type VIPConfig struct {
	Lamports uint64        `mapstructure:"lamports"`
	Duration time.Duration `mapstructure:"duration"`
}

type DrawConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	Schedule           string        `mapstructure:"schedule"`
	Timezone           string        `mapstructure:"timezone"`
	NetworkFeeLamports uint64        `mapstructure:"network_fee_lamports"`
	LockTTL            time.Duration `mapstructure:"lock_ttl"`
}

// Location resolves the draw time zone, falling back to UTC.
func (d DrawConfig) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading draw timezone %q: %w", d.Timezone, err)
	}
	return loc, nil
}

type NonceConfig struct {
	CSRFTTL   time.Duration `mapstructure:"csrf_ttl"`
	ActionTTL time.Duration `mapstructure:"action_ttl"`
}

type AdminConfig struct {
	Username     string        `mapstructure:"username"`
	PasswordHash string        `mapstructure:"password_hash"` // argon2id encoded
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiry    time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer    string        `mapstructure:"jwt_issuer"`
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded first when present.
// Environment variables override file values. Prefix: LOT_.
// Nested keys use underscore: LOT_DATABASE_HOST, LOT_CHAIN_RPC_URL, etc.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "lottery")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("chain.rpc_url", "https://api.devnet.solana.com")
	v.SetDefault("chain.request_timeout", "10s")
	v.SetDefault("chain.confirm_timeout", "30s")
	v.SetDefault("chain.confirm_poll_interval", "2s")
	v.SetDefault("chain.custodial_address", "CFLcvynnCrfQHcevyosen2yFp8qj59JPxjRww4MWPi28")
	v.SetDefault("chain.custodial_key", "")
	v.SetDefault("chain.custodial_key_file", "")
	v.SetDefault("lottery.entry_lamports", 10_000_000)
	v.SetDefault("lottery.fee_lamports", 5_000_000)
	v.SetDefault("lottery.fee_address", "")
	v.SetDefault("lottery.daily_deposit_cap", 3)
	v.SetDefault("vip.lamports", 10_000_000)
	v.SetDefault("vip.duration", "24h")
	v.SetDefault("draw.enabled", true)
	v.SetDefault("draw.schedule", "0 21 * * *")
	v.SetDefault("draw.timezone", "Europe/Amsterdam")
	v.SetDefault("draw.network_fee_lamports", 5000)
	v.SetDefault("draw.lock_ttl", "5m")
	v.SetDefault("nonce.csrf_ttl", "5m")
	v.SetDefault("nonce.action_ttl", "1h")
	v.SetDefault("admin.username", "operator")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.jwt_expiry", "1h")
	v.SetDefault("admin.jwt_issuer", "solana-lottery")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LOT_DATABASE_HOST -> database.host
	v.SetEnvPrefix("LOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
