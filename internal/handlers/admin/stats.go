package admin

import "lumira_back_end/internal/models"

// Stats sont les compteurs du tableau de bord admin.
type Stats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// ComputeStats calcule les compteurs depuis l'état courant des commandes.
// Seules les commandes livrées comptent dans le chiffre d'affaires, qui est
// recalculé intégralement à chaque appel — jamais patché incrémentalement.
func ComputeStats(totalProducts int, orders []models.Order) Stats {
	stats := Stats{TotalProducts: totalProducts, TotalOrders: len(orders)}
	for _, o := range orders {
		switch models.NormalizeStatus(o.Status) {
		case models.StatusPending:
			stats.PendingOrders++
		case models.StatusDelivered:
			stats.TotalRevenue += o.Total
		}
	}
	return stats
}
