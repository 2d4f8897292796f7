// Команда token выпускает JWT для указанного пользователя.
// Используется при локальной разработке вместо внешнего провайдера идентичности.
//
//	JWT_SECRET=secret go run ./cmd/token -u user-1
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type tokenConfig struct {
	Secret string        `env:"JWT_SECRET,required"`
	TTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fset := flag.NewFlagSet("token", flag.ContinueOnError)
	userID := fset.String("u", "", "user id to put into the token subject")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if *userID == "" {
		return errors.New("user id is required (-u)")
	}

	_ = godotenv.Load()

	var cfg tokenConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	token, err := service.NewAuthService(cfg.Secret, cfg.TTL).GenerateJWT(*userID)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(token)
	return nil
}
