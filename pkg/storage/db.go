package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// DB — единая точка доступа к Postgres для хранилища обратной связи.
// Всё владение таблицами post_feedback, product_performance и style_performance
// сосредоточено здесь; пайплайн держит только временные копии в памяти.
type DB struct {
	Conn *sql.DB
}

func NewDB(conn *sql.DB) *DB {
	return &DB{Conn: conn}
}
