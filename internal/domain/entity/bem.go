package entity

// Bem representa un ítem patrimonial tangible. Tombo es el número de
// catálogo físico (string numérico) y es único en el inventario.
type Bem struct {
	ID          string
	Tombo       string
	Nome        string
	Categoria   string
	Localizacao string
	Sala        string
	ImagemTombo string // base64 PNG de la etiqueta; vacío = sin imagen
	FotoBem     string // base64 JPEG del ítem; vacío = sin foto
}
