// Package migrations embebe los pasos de esquema ordenados que goose aplica
// sobre la instancia viva.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
