package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"wellnessPosts/internal/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// sqliteUnicodeDriver is go-sqlite3 with LOWER replaced by a Unicode-aware
// version; the builtin one folds ASCII only.
const sqliteUnicodeDriver = "sqlite3_unicode"

func init() {
	sql.Register(sqliteUnicodeDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
	sqlx.BindDriver(sqliteUnicodeDriver, sqlx.QUESTION)
}

// sqlDriverName maps a configured driver onto the registered database/sql driver.
func sqlDriverName(driver string) string {
	if driver == DriverSQLite {
		return sqliteUnicodeDriver
	}
	return driver
}

//go:embed migrations/*.sql
var migrations embed.FS

type MethodsDB interface {
	CloseDB() error
	RunMigrations() error
	HealthCheck(ctx context.Context) error
	GetDB() *DB
}

type DB struct {
	*sqlx.DB
}

var _ MethodsDB = (*DB)(nil)

// DataSourceName renders the connection string for the configured driver.
func DataSourceName(cfg config.DB) (string, error) {
	switch cfg.DbDRIVER {
	case DriverPostgres:
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DbHOST,
			cfg.DbPORT,
			cfg.DbUSER,
			cfg.DbPASSWORD,
			cfg.DbNAME,
			cfg.DbSSLMODE,
		), nil
	case DriverSQLite:
		return fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.DbPATH), nil
	default:
		return "", fmt.Errorf("неподдерживаемый драйвер БД: %q", cfg.DbDRIVER)
	}
}

func ConnectDB(cfg *config.Config, log logrus.FieldLogger) (*DB, error) {
	dsn, err := DataSourceName(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"driver": cfg.DB.DbDRIVER,
		"host":   cfg.DB.DbHOST,
		"dbname": cfg.DB.DbNAME,
	}).Info("Подключаемся к БД")

	db, err := sqlx.Connect(sqlDriverName(cfg.DB.DbDRIVER), dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	if cfg.DB.DbDRIVER == DriverSQLite {
		// one writer, and ":memory:" is per connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	dbStruct := &DB{db}

	if err := dbStruct.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	if err := dbStruct.HealthCheck(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("проверка БД не пройдена: %w", err)
	}

	log.Info("Успешное подключение к БД")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations applies the embedded schema for the active driver.
func (db *DB) RunMigrations() error {
	driver := db.DriverName()
	if driver == sqliteUnicodeDriver {
		driver = DriverSQLite
	}

	migrationSQL, err := migrations.ReadFile("migrations/" + driver + ".sql")
	if err != nil {
		return fmt.Errorf("файл миграций не найден для драйвера %s: %w", driver, err)
	}

	if _, err := db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("ошибка при выполнении миграций: %w", err)
	}

	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("подключение к БД не инициализировано")
	}

	return db.PingContext(ctx)
}

func (db *DB) GetDB() *DB {
	return db
}
