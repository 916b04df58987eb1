package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/thales-vaz-sousa/sistema-atas/internals/configs"
	atasModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/model"
	authModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/model"
	templateModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/model"
	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sistema_atas&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Falha na conexão com o DB: %v", err)
	}
	DB = db
	log.Println("✅ DB conectado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate cria/atualiza as tabelas do sistema de atas.
func Migrate() {
	if err := DB.AutoMigrate(
		&authModel.UsuarioModel{},
		&authModel.TokenBlacklist{},
		&unidadeModel.UnidadeModel{},
		&templateModel.TemplateModel{},
		&atasModel.AtaModel{},
		&atasModel.SacramentalModel{},
		&atasModel.BatismoModel{},
	); err != nil {
		log.Fatalf("❌ Falha na migração: %v", err)
	}
	log.Println("✅ Migração concluída.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
