package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL,default=24h"`

	MessageLimit   int `env:"MESSAGE_LIMIT,default=50"`
	PreviewLength  int `env:"PREVIEW_LENGTH,default=50"`
	NotifyInboxCap int `env:"NOTIFY_INBOX_CAP,default=100"`

	CensoredFilepath string `env:"CENSORED_FILEPATH"`
	CharReplacement  string `env:"CHARACTER_REPLACEMENT,default=*"`

	// DebugPort enables the local store inspector when non-zero.
	DebugPort int `env:"DEBUG_PORT"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
