package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTripIdentity(t *testing.T) {
	// clé → slug → libellé → clé doit être l'identité pour les 5 catégories
	for _, c := range Categories() {
		slug := Slug(c.Key)
		label := Label(slug)
		key := Canonical(label)
		assert.Equal(t, c.Key, key, "aller-retour cassé pour %s", c.Key)
	}
}

func TestResolveAnyRepresentation(t *testing.T) {
	assert.Equal(t, "Watches", Canonical("Montres"))
	assert.Equal(t, "Watches", Canonical("montres"))
	assert.Equal(t, "Watches", Canonical("Watches"))
	assert.Equal(t, "Montres", Label("Watches"))
	assert.Equal(t, "boucles d'oreilles", Slug("Earrings"))
	assert.Equal(t, "Earrings", Canonical("Boucles d'oreilles"))
}

func TestUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "Chapeaux", Canonical("Chapeaux"))
	assert.Equal(t, "Chapeaux", Label("Chapeaux"))
	assert.Equal(t, "Chapeaux", Slug("Chapeaux"))
}

func TestIsAll(t *testing.T) {
	assert.True(t, IsAll(""))
	assert.True(t, IsAll("Tout"))
	assert.True(t, IsAll("tout"))
	assert.True(t, IsAll("All"))
	assert.False(t, IsAll("Montres"))
	assert.False(t, IsAll("Chapeaux"))
}

func TestCategoriesExcludesPseudo(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 5)
	for _, c := range cats {
		assert.NotEqual(t, "All", c.Key)
	}
}
