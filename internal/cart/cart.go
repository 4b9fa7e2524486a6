// Package cart implémente le panier d'une session de navigation :
// fusion par produit, quantités, total recalculé à la demande.
package cart

import "lumira_back_end/internal/models"

// Cart est l'état en mémoire d'un panier. L'ordre d'insertion est conservé
// pour l'affichage uniquement. Invariant : au plus une ligne par produit.
type Cart struct {
	items []models.CartItem
}

// New construit un panier à partir d'items existants (chargés depuis Redis).
func New(items []models.CartItem) *Cart {
	c := &Cart{}
	for _, it := range items {
		c.Add(it, it.Quantity)
	}
	return c
}

// Add ajoute qty exemplaires d'un produit. Si une ligne existe déjà pour ce
// produit, sa quantité est incrémentée ; sinon une ligne est ajoutée en fin.
func (c *Cart) Add(item models.CartItem, qty int) {
	if qty <= 0 {
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += qty
			return
		}
	}
	item.Quantity = qty
	c.items = append(c.items, item)
}

// SetQuantity écrase la quantité d'une ligne. qty ≤ 0 équivaut à Remove.
// Aucune borne supérieure : il n'y a pas de gestion de stock.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// Remove supprime la ligne d'un produit. Sans effet si elle n'existe pas.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Total recalcule Σ prix × quantité à chaque appel, jamais mis en cache.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Clear vide le panier.
func (c *Cart) Clear() {
	c.items = nil
}

// IsEmpty indique si le panier ne contient aucune ligne.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items retourne une copie des lignes du panier.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}
