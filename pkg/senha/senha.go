// Package senha concentra el manejo de credenciales: hashing bcrypt con
// soporte de verificación para senhas legadas guardadas en texto plano
// (bases anteriores a la migración de seguridad) y generación de senhas
// temporales de recuperación.
package senha

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strings"

	"github.com/tu-usuario/patrimonio-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Costo bcrypt usado para toda senha nueva.
const Costo = 10

// Los hashes bcrypt empiezan con $2a$ / $2b$ / $2y$.
const prefijoBcrypt = "$2"

const (
	caracteresTemporal = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	largoTemporal      = 6
)

// Hasher hashea y verifica credenciales. El logger se usa únicamente para
// avisar del fallback inseguro cuando bcrypt falla.
type Hasher struct {
	log *logger.Logger
}

// NewHasher construye el hasher.
func NewHasher(log *logger.Logger) *Hasher {
	if log == nil {
		log = logger.Nop()
	}
	return &Hasher{log: log}
}

// Hash devuelve el digest bcrypt de la senha. Si bcrypt falla (p.ej. senha
// mayor a 72 bytes), degrada a devolver el texto plano con un warn: el
// sistema prefiere seguir operando en modo inseguro documentado a negar el
// alta de la credencial.
func (h *Hasher) Hash(plano string) string {
	digest, err := bcrypt.GenerateFromPassword([]byte(plano), Costo)
	if err != nil {
		h.log.Warn().Err(err).Msg("bcrypt indisponible, guardando credencial sin hash (modo inseguro)")
		return plano
	}
	return string(digest)
}

// Comparar verifica la senha digitada contra el valor guardado. Si el valor
// guardado es un hash bcrypt delega en la comparación de la librería; si no,
// compara texto plano contra texto plano (senhas legadas previas a la
// migración).
func (h *Hasher) Comparar(digitada, guardada string) bool {
	if EhHash(guardada) {
		return bcrypt.CompareHashAndPassword([]byte(guardada), []byte(digitada)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(digitada), []byte(guardada)) == 1
}

// EhHash informa si el valor guardado ya está en formato bcrypt. Login usa
// esto para disparar el rehash perezoso de cuentas legadas.
func EhHash(guardada string) bool {
	return strings.HasPrefix(guardada, prefijoBcrypt)
}

// GerarTemporaria genera una senha temporal de 6 caracteres alfanuméricos
// en mayúsculas, a mostrar una única vez al usuario.
func GerarTemporaria() (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(caracteresTemporal)))
	for i := 0; i < largoTemporal; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(caracteresTemporal[n.Int64()])
	}
	return b.String(), nil
}
