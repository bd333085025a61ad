package main

import (
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/fulfilment-api/pkg/config"
	"github.com/jhoicas/fulfilment-api/pkg/logger"
)

// Ejecuta las migraciones con goose: `migrate [-dir ./migrations] [up|down|status ...]`.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "migrate",
	})

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "directorio con los archivos de migración")
	flag.Parse()

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión a PostgreSQL")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar conexión")
		}
	}()

	goose.SetLogger(goose.NopLogger())

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migración fallida")
	}

	log.Info().Str("command", command).Msg("migración aplicada")
}
