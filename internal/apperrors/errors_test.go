package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeCodes(t *testing.T) {
	code, body := NotFound("Produit").Envelope()
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Produit introuvable", body["error"])

	code, body = StoreUnavailable(errors.New("no hosts available")).Envelope()
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "Erreur connexion base de données", body["error"])

	code, _ = Validation("name").Envelope()
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = UploadTransport(errors.New("timeout")).Envelope()
	assert.Equal(t, http.StatusBadGateway, code)
}

func TestSentinelMatching(t *testing.T) {
	assert.ErrorIs(t, NotFound("Commande"), ErrNotFound)
	assert.ErrorIs(t, Validation("phone"), ErrValidation)
	assert.ErrorIs(t, Validationf("Le panier est vide"), ErrValidation)

	// l'erreur de connexion d'origine reste accessible sous l'enveloppe
	cause := errors.New("gocql: no hosts available")
	wrapped := StoreUnavailable(cause)
	assert.ErrorIs(t, wrapped, ErrStoreUnavailable)
	assert.ErrorIs(t, wrapped, cause)
}
