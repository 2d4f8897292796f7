package config

import (
	"fmt"
	"net"
	"strconv"
)

// NetworkAddress адрес вида host:port; пустой host означает все интерфейсы
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set реализует flag.Value
func (a *NetworkAddress) Set(value string) error {
	host, portStr, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("port out of range: %d", port)
	}

	a.Host = host
	a.Port = port

	return nil
}

// UnmarshalText используется при разборе переменных окружения
func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
