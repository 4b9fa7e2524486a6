package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumira_back_end/internal/models"
)

func item(id string, price float64) models.CartItem {
	return models.CartItem{ProductID: id, Name: "Produit " + id, Price: price, ImageURL: "/img/" + id + ".jpg"}
}

func TestAddMergesByProductID(t *testing.T) {
	c := New(nil)
	c.Add(item("1", 299), 1)
	c.Add(item("1", 299), 1)
	c.Add(item("1", 299), 3)

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New(nil)
	c.Add(item("a", 10), 1)
	c.Add(item("b", 20), 1)
	c.Add(item("a", 10), 1)

	items := c.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ProductID)
	assert.Equal(t, "b", items[1].ProductID)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	c := New(nil)
	c.Add(item("1", 299), 2)
	c.SetQuantity("1", 0)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0.0, c.Total())
}

func TestSetQuantityOverwrites(t *testing.T) {
	c := New(nil)
	c.Add(item("1", 100), 2)
	c.SetQuantity("1", 7)

	assert.Equal(t, 7, c.Items()[0].Quantity)
	assert.Equal(t, 700.0, c.Total())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := New(nil)
	c.Add(item("1", 100), 1)
	c.Remove("42")

	assert.Len(t, c.Items(), 1)
}

func TestTotalRecomputedAfterRemove(t *testing.T) {
	c := New(nil)
	c.Add(item("1", 299), 1)
	c.Add(item("2", 150), 2)
	assert.Equal(t, 599.0, c.Total())

	c.Remove("2")
	assert.Equal(t, 299.0, c.Total())
}

func TestScenarioAddExistingProduct(t *testing.T) {
	// panier: {id:"1", prix:299, qty:1} ; add(id "1", 1) → qty 2, total 598
	c := New(nil)
	c.Add(item("1", 299), 1)
	c.Add(item("1", 299), 1)

	assert.Equal(t, 2, c.Items()[0].Quantity)
	assert.Equal(t, 598.0, c.Total())
}

func TestClear(t *testing.T) {
	c := New(nil)
	c.Add(item("1", 299), 1)
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Items())
}

func TestNewMergesDuplicateLines(t *testing.T) {
	// un état persisté corrompu avec deux lignes du même produit est refusionné
	items := []models.CartItem{
		{ProductID: "1", Price: 50, Quantity: 1},
		{ProductID: "1", Price: 50, Quantity: 2},
	}
	c := New(items)

	assert.Len(t, c.Items(), 1)
	assert.Equal(t, 3, c.Items()[0].Quantity)
}
