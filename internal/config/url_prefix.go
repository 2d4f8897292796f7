package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix базовый адрес, от которого строятся короткие ссылки; хранится без завершающего "/"
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

// Set реализует flag.Value
func (p *URLPrefix) Set(value string) error {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

// UnmarshalText используется при разборе переменных окружения
func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
