package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts canoniques d'une commande. Aucun graphe de transition n'est
// imposé : l'admin peut passer d'un statut à n'importe quel autre.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "livré"
	StatusCancelled = "cancelled"
)

// OrderStatuses liste les statuts acceptés en écriture.
var OrderStatuses = []string{StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled}

type Order struct {
	ID           gocql.UUID `json:"id" db:"order_id"`
	CustomerName string     `json:"customerName" db:"customer_name"`
	Phone        string     `json:"phone" db:"phone"`
	City         string     `json:"city" db:"city"`
	Address      string     `json:"address" db:"address"`
	Items        []CartItem `json:"items" db:"items"`
	Total        float64    `json:"total" db:"total"`
	Status       string     `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"date" db:"created_at"`
}

// IsValidStatus vérifie qu'un statut fait partie de l'énumération canonique.
func IsValidStatus(s string) bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// NormalizeStatus ramène les anciennes valeurs stockées vers l'énumération
// canonique. D'anciennes commandes portent "En attente" au lieu de "pending" ;
// on normalise en lecture pour que les filtres et le dashboard soient d'accord.
func NormalizeStatus(s string) string {
	if s == "En attente" {
		return StatusPending
	}
	return s
}
