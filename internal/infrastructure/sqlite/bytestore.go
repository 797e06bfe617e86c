// Package sqlite implementa el núcleo de persistencia embebida: un byte
// store durable de clave fija, el engine de la sesión viva y los
// repositorios SQL de usuarios, bens y movimentações.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver sqlite puro Go

	"github.com/tu-usuario/patrimonio-api/pkg/logger"
)

// Nombres fijos del área durable: una tabla y una única clave bajo la que
// vive el snapshot serializado completo de la base.
const (
	storeTabla = "arquivos"
	storeChave = "sqlite_file"
)

// ByteStore persiste un blob binario opaco entre sesiones.
// Load devuelve (nil, false) en el primer arranque o ante cualquier error
// de lectura (arranque degradado-optimista); Save propaga el fallo y el
// caller debe tratarlo como fatal para la operación que lo disparó.
type ByteStore interface {
	Save(data []byte) error
	Load() ([]byte, bool)
}

// ArquivoStore implementa ByteStore sobre un archivo SQLite transaccional
// con una tabla clave→payload.
type ArquivoStore struct {
	db  *sql.DB
	log *logger.Logger
}

// OpenArquivoStore abre (o crea) el archivo durable y garantiza la tabla.
func OpenArquivoStore(path string, log *logger.Logger) (*ArquivoStore, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("crear directorio del store: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir byte store: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		chave TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`, storeTabla)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear tabla %s: %w", storeTabla, err)
	}
	return &ArquivoStore{db: db, log: log}, nil
}

// Save guarda el blob bajo la clave fija dentro de una transacción.
func (s *ArquivoStore) Save(data []byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if _, err := tx.Exec(fmt.Sprintf(
		`INSERT INTO %s(chave, payload) VALUES(?, ?)
		 ON CONFLICT(chave) DO UPDATE SET payload = excluded.payload`, storeTabla),
		storeChave, data); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("guardar payload: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load lee el blob bajo la clave fija. Cualquier error (incluido "sin fila")
// se resuelve como ausente: el sistema prefiere arrancar vacío a no arrancar.
func (s *ArquivoStore) Load() ([]byte, bool) {
	var payload []byte
	err := s.db.QueryRow(fmt.Sprintf(
		`SELECT payload FROM %s WHERE chave = ?`, storeTabla), storeChave).Scan(&payload)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn().Err(err).Msg("error leyendo el byte store, arrancando con base nueva")
		}
		return nil, false
	}
	return payload, true
}

// Close cierra el archivo durable.
func (s *ArquivoStore) Close() error {
	return s.db.Close()
}
