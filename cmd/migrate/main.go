// Comando migrate gestiona las migraciones embebidas: go run ./cmd/migrate [up|down|version]
package main

import (
	"flag"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/postgres"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/config"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

func main() {
	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	dsn := cfg.DB.ConnectionString()

	switch command {
	case "up", "down":
		if err := postgres.Migrate(dsn, command == "down"); err != nil {
			log.Fatal().Err(err).Str("comando", command).Msg("migraciones")
		}
		log.Info().Str("comando", command).Msg("migraciones aplicadas")
	case "version":
		v, dirty, err := postgres.MigrationVersion(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("leer versión de migraciones")
		}
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("versión de migraciones")
	default:
		log.Fatal().Str("comando", command).Msg("comando desconocido; use up, down o version")
	}
}
