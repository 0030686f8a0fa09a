package store

import (
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store - локальное документное хранилище поверх SQLite.
// Одно хранилище = один файл БД, коллекции регистрируются через NewCollection.
// Все мутации сериализуются через общий мьютекс (одна логическая запись).
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// row - строка коллекции в SQLite: первичный ключ + JSON документа.
type row struct {
	ID  string `gorm:"primaryKey;column:id"`
	Doc []byte `gorm:"not null;column:doc"`
}

// Open открывает (или создает) базу по указанному DSN.
// Для тестов можно передать ":memory:".
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite ограничения
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	// Одно соединение: SQLite не любит параллельную запись, а ":memory:"
	// на нескольких соединениях дал бы несколько разных баз.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	sqlDB.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close закрывает соединение с БД. Повторный вызов безопасен для вызывающего.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return &StorageError{Op: "close", Err: err}
	}
	return sqlDB.Close()
}
