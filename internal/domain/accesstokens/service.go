package accesstokens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"urbanizacion-api/internal/domain/profiles"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
	ErrIssuanceFailed = errors.New("issuance failed")
)

// Mensajes que ve el guardia en pantalla. No exponen detalle interno.
const (
	msgGranted     = "Acceso Permitido"
	msgNotFound    = "Código inválido o no encontrado."
	msgAlreadyUsed = "Este código YA FUE UTILIZADO."
	msgExpired     = "El código ha EXPIRADO."
	msgProcessing  = "Error al procesar el ingreso."
)

// ProfileLookup resuelve el perfil del residente emisor para el join de la
// verificación. Interface chica para no acoplar el módulo completo.
type ProfileLookup interface {
	GetByID(ctx context.Context, id string) (profiles.Profile, error)
}

type Service struct {
	repo     Repository
	profiles ProfileLookup
	log      *logrus.Entry
	now      func() time.Time
}

func NewService(repo Repository, lookup ProfileLookup, log *logrus.Entry) *Service {
	return &Service{
		repo:     repo,
		profiles: lookup,
		log:      log,
		now:      time.Now,
	}
}

// Issue genera un token de un solo uso para un visitante.
// Crea exactamente un registro; nunca toca tokens existentes.
func (s *Service) Issue(ctx context.Context, ownerID, visitorName string) (Token, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Token{}, ErrUnauthorized
	}

	visitorName = strings.TrimSpace(visitorName)
	if visitorName == "" {
		return Token{}, ErrInvalidInput
	}

	now := s.now()
	t := Token{
		ID:          uuid.NewString(),
		Code:        uuid.NewString(), // no adivinable; nunca un id secuencial
		OwnerID:     ownerID,
		VisitorName: visitorName,
		ValidUntil:  now.Add(TokenTTL),
		Used:        false,
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.log.WithError(err).WithField("owner_id", ownerID).Error("error creating access token")
		// hacia afuera solo va un error genérico, el detalle queda en el log
		return Token{}, fmt.Errorf("%w: %v", ErrIssuanceFailed, err)
	}

	return t, nil
}

// Verify evalúa un código en orden estricto: no encontrado, ya usado,
// expirado, y recién al final la mutación que lo consume. Un rechazo nunca
// modifica el token almacenado; el éxito solo se reporta con el consumo
// registrado de forma durable.
func (s *Service) Verify(ctx context.Context, code string) Verification {
	code = strings.TrimSpace(code)
	if code == "" {
		return denied(ReasonNotFound, msgNotFound)
	}

	t, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		// lookup fallido y código inexistente responden igual hacia afuera
		if !errors.Is(err, ErrTokenNotFound) {
			s.log.WithError(err).Error("error fetching access token")
		}
		return denied(ReasonNotFound, msgNotFound)
	}

	// "ya usado" se reporta distinto de "expirado": un replay no es lo mismo
	// que un código viejo, y el operador necesita distinguirlos.
	if t.Used {
		return denied(ReasonAlreadyUsed, msgAlreadyUsed)
	}

	if t.Expired(s.now()) {
		// un token vencido sin usar queda sin usar
		return denied(ReasonExpired, msgExpired)
	}

	// Consumo condicional: si otra verificación ganó la carrera, Consume
	// devuelve ErrAlreadyConsumed y este intento se rechaza como replay.
	if err := s.repo.Consume(ctx, code); err != nil {
		if errors.Is(err, ErrAlreadyConsumed) {
			return denied(ReasonAlreadyUsed, msgAlreadyUsed)
		}
		s.log.WithError(err).Error("error consuming access token")
		return denied(ReasonProcessing, msgProcessing)
	}

	return s.granted(ctx, t)
}

// ListByOwner devuelve los últimos tokens emitidos por un residente.
func (s *Service) ListByOwner(ctx context.Context, ownerID string, limit int) ([]Token, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = 5
	}
	return s.repo.ListByOwner(ctx, ownerID, limit)
}

func (s *Service) granted(ctx context.Context, t Token) Verification {
	v := Verification{
		Granted:      true,
		Message:      msgGranted,
		VisitorName:  t.VisitorName,
		ResidentName: "Residente",
		HouseNumber:  "N/A",
	}
	if strings.TrimSpace(v.VisitorName) == "" {
		v.VisitorName = "Visitante"
	}

	// El join con el perfil es best-effort: un perfil incompleto no puede
	// tumbar un acceso ya consumido.
	p, err := s.profiles.GetByID(ctx, t.OwnerID)
	if err != nil {
		s.log.WithError(err).WithField("owner_id", t.OwnerID).Warn("owner profile missing on verification")
		return v
	}

	if name := strings.TrimSpace(p.FullName); name != "" {
		v.ResidentName = name
	}
	if house := strings.TrimSpace(p.HouseNumber); house != "" {
		v.HouseNumber = house
	}
	v.Role = string(p.Role)

	return v
}

func denied(reason DenialReason, msg string) Verification {
	return Verification{
		Granted: false,
		Reason:  reason,
		Message: msg,
	}
}
