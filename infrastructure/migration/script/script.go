package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/vfg2006/engagement-insights/infrastructure/database/postgres"
	"github.com/vfg2006/engagement-insights/internal/config"
)

// statements criam a tabela de snapshots dos posts enriquecidos. Podem ser reexecutados.
var statements = []struct {
	name  string
	query string
}{
	{
		name: "tabela post_metrics",
		query: `
			CREATE TABLE IF NOT EXISTS post_metrics (
				run_id          VARCHAR(16) NOT NULL,
				row_index       INTEGER NOT NULL,
				post_date       DATE NOT NULL,
				impressions     BIGINT,
				from_home       BIGINT,
				from_hashtags   BIGINT,
				from_explore    BIGINT,
				from_other      BIGINT,
				saves           BIGINT,
				comments        BIGINT,
				shares          BIGINT,
				likes           BIGINT,
				profile_visits  BIGINT,
				follows         BIGINT,
				caption         TEXT,
				hashtags        TEXT,
				engagement_rate DOUBLE PRECISION,
				like_rate       DOUBLE PRECISION,
				save_rate       DOUBLE PRECISION,
				comment_rate    DOUBLE PRECISION,
				share_rate      DOUBLE PRECISION,
				day_of_week     VARCHAR(9),
				month           VARCHAR(9),
				created_at      TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at      TIMESTAMP NOT NULL DEFAULT NOW(),
				CONSTRAINT post_metrics_run_row_unique UNIQUE (run_id, row_index)
			)`,
	},
	{
		name:  "índice por data",
		query: `CREATE INDEX IF NOT EXISTS post_metrics_post_date_idx ON post_metrics (post_date)`,
	},
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func migrate(ctx context.Context, conn *postgres.Connection) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			startTime := time.Now()
			if _, err := tx.ExecContext(ctx, stmt.query); err != nil {
				log.Printf("ERRO ao criar %s: %v", stmt.name, err)
				return err
			}
			log.Printf("%s criado em %v", stmt.name, time.Since(startTime))
		}
		return nil
	})
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	if err := migrate(ctx, conn); err != nil {
		log.Fatalf("ERRO na migração: %v", err)
	}

	log.Println("Migração concluída com sucesso")
}
