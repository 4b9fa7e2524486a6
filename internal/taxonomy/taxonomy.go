// Package taxonomy est l'unique table de correspondance des catégories :
// clé de stockage (anglais) ↔ libellé d'affichage (français) ↔ slug d'URL.
// Toute traversée d'une de ces représentations passe par ici — jamais de
// dictionnaire recopié dans un écran.
package taxonomy

import "strings"

type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// Les 5 catégories canoniques, dans l'ordre d'affichage de la boutique.
var categories = []Category{
	{Key: "Watches", Label: "Montres", Slug: "montres"},
	{Key: "Necklaces", Label: "Colliers", Slug: "colliers"},
	{Key: "Bracelets", Label: "Bracelets", Slug: "bracelets"},
	{Key: "Earrings", Label: "Boucles d'oreilles", Slug: "boucles d'oreilles"},
	{Key: "Rings", Label: "Bagues", Slug: "bagues"},
}

// Pseudo-catégorie "tout voir" : filtrer dessus = ne pas filtrer.
var all = Category{Key: "All", Label: "Tout", Slug: "tout"}

// Categories retourne les catégories réelles (sans la pseudo-catégorie).
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// resolve retrouve la ligne de la table correspondant à n'importe laquelle
// des trois représentations, sans tenir compte de la casse.
func resolve(s string) (Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return Category{}, false
	}
	for _, c := range append(categories, all) {
		if needle == strings.ToLower(c.Key) || needle == strings.ToLower(c.Label) || needle == c.Slug {
			return c, true
		}
	}
	return Category{}, false
}

// Canonical retourne la clé de stockage. Entrée inconnue → renvoyée telle
// quelle (repli identité, jamais d'erreur).
func Canonical(s string) string {
	if c, ok := resolve(s); ok {
		return c.Key
	}
	return s
}

// Label retourne le libellé français d'affichage, avec repli identité.
func Label(s string) string {
	if c, ok := resolve(s); ok {
		return c.Label
	}
	return s
}

// Slug retourne le slug d'URL, avec repli identité.
func Slug(s string) string {
	if c, ok := resolve(s); ok {
		return c.Slug
	}
	return s
}

// IsAll reconnaît la pseudo-catégorie Tout/All (ou l'absence de filtre).
func IsAll(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	c, ok := resolve(s)
	return ok && c.Key == all.Key
}
