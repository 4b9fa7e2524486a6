package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumira_back_end/internal/models"
)

func TestComputeStatsCounts(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusPending, Total: 100},
		{Status: models.StatusConfirmed, Total: 200},
		{Status: models.StatusDelivered, Total: 598},
		{Status: models.StatusDelivered, Total: 150},
		{Status: models.StatusCancelled, Total: 999},
	}

	stats := ComputeStats(12, orders)

	assert.Equal(t, 12, stats.TotalProducts)
	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 748.0, stats.TotalRevenue, "seules les commandes livrées comptent")
}

func TestComputeStatsLegacyPendingSpelling(t *testing.T) {
	// "En attente" est une orthographe héritée de pending : elle doit être
	// comptée comme telle partout, pas seulement dans un écran
	orders := []models.Order{
		{Status: "En attente", Total: 50},
		{Status: models.StatusPending, Total: 60},
	}

	stats := ComputeStats(0, orders)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 0.0, stats.TotalRevenue)
}

func TestRevenueFollowsDeliveredTransitions(t *testing.T) {
	orders := []models.Order{{Status: models.StatusPending, Total: 598}}
	assert.Equal(t, 0.0, ComputeStats(0, orders).TotalRevenue)

	// admin passe la commande à "livré" : le chiffre d'affaires monte du total
	orders[0].Status = models.StatusDelivered
	assert.Equal(t, 598.0, ComputeStats(0, orders).TotalRevenue)

	// puis à "cancelled" : il redescend d'autant, car tout est recalculé
	orders[0].Status = models.StatusCancelled
	assert.Equal(t, 0.0, ComputeStats(0, orders).TotalRevenue)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(0, nil)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.PendingOrders)
	assert.Zero(t, stats.TotalRevenue)
}
