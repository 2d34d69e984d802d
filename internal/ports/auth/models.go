package auth

// Claims representa la identidad extraída de un token de sesión.
// El rol NO viene en los claims: se resuelve contra la tabla de perfiles.
type Claims struct {
	UserID string
	Email  string
}
