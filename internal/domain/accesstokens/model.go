package accesstokens

import "time"

// TokenTTL es la ventana de validez fija de un código de acceso.
const TokenTTL = 10 * time.Minute

// Token es la credencial de un solo uso que un residente genera para su
// visitante. Code es el secreto que viaja dentro del QR.
type Token struct {
	ID   string
	Code string

	OwnerID     string // residente emisor
	VisitorName string

	ValidUntil time.Time
	Used       bool

	CreatedAt time.Time
}

// Expired indica si el token venció en el instante dado.
// El límite es inclusivo: un token verificado exactamente en ValidUntil
// todavía es válido (mismo criterio que `valid_until < now`).
func (t Token) Expired(now time.Time) bool {
	return now.After(t.ValidUntil)
}

// DenialReason es el conjunto cerrado de motivos de rechazo.
type DenialReason string

const (
	ReasonNotFound    DenialReason = "not_found"
	ReasonAlreadyUsed DenialReason = "already_used"
	ReasonExpired     DenialReason = "expired"
	ReasonProcessing  DenialReason = "processing_error"
)

// Verification es el resultado de verificar un código en la garita.
// Granted=true solo después de consumir el token de forma durable.
type Verification struct {
	Granted bool
	Reason  DenialReason // vacío cuando Granted
	Message string

	// Datos que ve el guardia cuando el acceso es permitido.
	VisitorName  string
	ResidentName string
	HouseNumber  string
	Role         string
}
