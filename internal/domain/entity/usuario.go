package entity

// Perfis válidos para Usuario.
const (
	PerfilAdmin = "ADMIN"
	PerfilUser  = "USER"
)

// Login reservado del administrador por defecto: se siembra al crear el
// almacén y nunca puede eliminarse.
const (
	AdminEmail            = "admin@email.com"
	AdminEmailRecuperacao = "admin@patrimonio.com"
	AdminSenhaPadrao      = "admin123"
)

// Usuario representa una cuenta del sistema. Email funciona como login y es único.
type Usuario struct {
	ID               string
	Email            string
	Password         string // hash bcrypt; texto plano solo en filas legadas pre-migración
	Perfil           string // ADMIN | USER
	EmailRecuperacao string
	TempPassword     bool // true obliga a cambiar la senha antes de usar el sistema
}
