package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	// TickInterval is how often every room's state is pushed to its members.
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
	// MaxMessageBytes caps a single inbound frame.
	MaxMessageBytes int64 `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	// SendBuffer is the number of outbound events queued per connection before drops.
	SendBuffer   int           `mapstructure:"send_buffer" yaml:"send_buffer"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	// MaxMessagesPerSecond limits inbound frames per connection; 0 disables the limit.
	MaxMessagesPerSecond int `mapstructure:"max_messages_per_second" yaml:"max_messages_per_second"`

	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb" yaml:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups" yaml:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days" yaml:"log_max_age_days"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:                 ":3000",
		ReadHeaderTimeout:    5 * time.Second,
		ShutdownTimeout:      5 * time.Second,
		TickInterval:         100 * time.Millisecond,
		MaxMessageBytes:      64 << 10,
		SendBuffer:           64,
		WriteTimeout:         5 * time.Second,
		MaxMessagesPerSecond: 0,
		LogLevel:             "info",
		LogMaxSizeMB:         10,
		LogMaxBackups:        3,
		LogMaxAgeDays:        7,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.TickInterval != 0 {
		c.TickInterval = other.TickInterval
	}
	if other.MaxMessageBytes != 0 {
		c.MaxMessageBytes = other.MaxMessageBytes
	}
	if other.SendBuffer != 0 {
		c.SendBuffer = other.SendBuffer
	}
	if other.WriteTimeout != 0 {
		c.WriteTimeout = other.WriteTimeout
	}
	if other.MaxMessagesPerSecond != 0 {
		c.MaxMessagesPerSecond = other.MaxMessagesPerSecond
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval))
	}
	if c.MaxMessageBytes <= 0 {
		errs = append(errs, fmt.Errorf("max_message_bytes must be positive, got %d", c.MaxMessageBytes))
	}
	if c.SendBuffer <= 0 {
		errs = append(errs, fmt.Errorf("send_buffer must be positive, got %d", c.SendBuffer))
	}
	if c.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("write_timeout must be positive, got %s", c.WriteTimeout))
	}
	if c.MaxMessagesPerSecond < 0 {
		errs = append(errs, fmt.Errorf("max_messages_per_second must not be negative, got %d", c.MaxMessagesPerSecond))
	}
	return errors.Join(errs...)
}
