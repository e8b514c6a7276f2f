package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Security   SecurityConfig   `mapstructure:"security"`
	Mail       MailConfig       `mapstructure:"mail"`
	Recipients RecipientsConfig `mapstructure:"recipients"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SecurityConfig holds security-related configuration
type SecurityConfig struct {
	// SecretKey signs the flash-message cookie. If empty, a random key is
	// generated at startup and flashes do not survive a restart.
	SecretKey string `mapstructure:"secret_key"`
}

// MailConfig holds SMTP submission configuration
type MailConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// SenderAddress is the authenticated "From" address. Required.
	SenderAddress string `mapstructure:"sender_address"`
	// SenderPassword is the SMTP credential (a Gmail App Password when
	// submitting through smtp.gmail.com). Required.
	SenderPassword string `mapstructure:"sender_password"`
	// SenderName is the display name for the sender
	SenderName string `mapstructure:"sender_name"`
}

// RecipientsConfig holds recipient list persistence configuration
type RecipientsConfig struct {
	// File is the path of the flat text file holding one address per line
	File string `mapstructure:"file"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// A .env file in the working directory is loaded first so its values
	// are visible to viper's env binding. Missing file is fine.
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/alertdash")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("ALERTDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required settings are present. The process must not
// start without SMTP credentials.
func (c *Config) Validate() error {
	var missing []string
	if c.Mail.SenderAddress == "" {
		missing = append(missing, "mail.sender_address (ALERTDASH_MAIL_SENDER_ADDRESS)")
	}
	if c.Mail.SenderPassword == "" {
		missing = append(missing, "mail.sender_password (ALERTDASH_MAIL_SENDER_PASSWORD)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// EnsureSecretKey fills in a random secret key when none is configured.
// It reports whether a key had to be generated so the caller can warn.
func (c *Config) EnsureSecretKey() (bool, error) {
	if c.Security.SecretKey != "" {
		return false, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return false, fmt.Errorf("failed to generate secret key: %w", err)
	}
	c.Security.SecretKey = hex.EncodeToString(buf)
	return true, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5050)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Security defaults
	v.SetDefault("security.secret_key", "")

	// Mail defaults
	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 465)
	v.SetDefault("mail.sender_address", "")
	v.SetDefault("mail.sender_password", "")
	v.SetDefault("mail.sender_name", "Alertdash")

	// Recipients defaults
	v.SetDefault("recipients.file", "clients.txt")
}
