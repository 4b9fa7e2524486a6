package models

// CartItem est une ligne de panier : un produit + une quantité.
// Le nom, le prix et l'image sont des instantanés pris au moment de l'ajout.
type CartItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image"`
	Quantity  int     `json:"quantity"`
}
