package dto

// CreateBemRequest entrada para registrar un bem patrimonial.
type CreateBemRequest struct {
	Tombo       string `json:"tombo" validate:"required,numeric"`
	Nome        string `json:"nome" validate:"required"`
	Categoria   string `json:"categoria"`
	Localizacao string `json:"localizacao"`
	Sala        string `json:"sala"`
	ImagemTombo string `json:"imagem_tombo"` // base64 PNG
	FotoBem     string `json:"foto_bem"`     // base64 JPEG
}

// UpdateBemRequest entrada para editar un bem existente.
type UpdateBemRequest struct {
	Tombo       string `json:"tombo" validate:"required,numeric"`
	Nome        string `json:"nome" validate:"required"`
	Categoria   string `json:"categoria"`
	Localizacao string `json:"localizacao"`
	Sala        string `json:"sala"`
	ImagemTombo string `json:"imagem_tombo"`
	FotoBem     string `json:"foto_bem"`
}

// BemResponse salida de un bem.
type BemResponse struct {
	ID          string `json:"id"`
	Tombo       string `json:"tombo"`
	Nome        string `json:"nome"`
	Categoria   string `json:"categoria"`
	Localizacao string `json:"localizacao"`
	Sala        string `json:"sala"`
	ImagemTombo string `json:"imagem_tombo,omitempty"`
	FotoBem     string `json:"foto_bem,omitempty"`
}
