// Package apperrors définit les familles d'erreurs applicatives.
// Toute erreur qui franchit une frontière HTTP est convertie en enveloppe
// {success:false, error:...} — aucune n'est fatale au processus.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error est une erreur applicative portant un code HTTP.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Envelope retourne le code HTTP et l'enveloppe {success:false, error:...}
// de l'erreur, prêts à passer à c.JSON.
func (e *Error) Envelope() (int, map[string]any) {
	return e.Code, map[string]any{"success": false, "error": e.Message}
}

// Familles d'erreurs. On compare avec errors.Is contre ces sentinelles.
var (
	ErrValidation       = &Error{Code: http.StatusBadRequest, Message: "champ requis manquant ou invalide"}
	ErrNotFound         = &Error{Code: http.StatusNotFound, Message: "ressource introuvable"}
	ErrStoreUnavailable = &Error{Code: http.StatusServiceUnavailable, Message: "base de données inaccessible"}
	ErrUploadRejected   = &Error{Code: http.StatusBadRequest, Message: "fichier refusé"}
	ErrUploadTransport  = &Error{Code: http.StatusBadGateway, Message: "échec d'envoi vers le stockage d'images"}
)

// Validation crée une erreur de validation nommant le champ fautif.
func Validation(field string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: "Le champ '" + field + "' est obligatoire", Err: ErrValidation}
}

// Validationf crée une erreur de validation avec un message libre.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Err: ErrValidation}
}

// NotFound crée une erreur "introuvable" pour une entité donnée.
func NotFound(what string) *Error {
	return &Error{Code: http.StatusNotFound, Message: what + " introuvable", Err: ErrNotFound}
}

// StoreUnavailable enveloppe une erreur de connexion à la base.
func StoreUnavailable(err error) *Error {
	return &Error{Code: http.StatusServiceUnavailable, Message: "Erreur connexion base de données", Err: errors.Join(ErrStoreUnavailable, err)}
}

// UploadRejected crée un refus par fichier du pipeline d'images.
func UploadRejected(format string, args ...any) *Error {
	return &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Err: ErrUploadRejected}
}

// UploadTransport enveloppe une panne du stockage d'images.
func UploadTransport(err error) *Error {
	return &Error{Code: http.StatusBadGateway, Message: "Erreur upload stockage images", Err: errors.Join(ErrUploadTransport, err)}
}
