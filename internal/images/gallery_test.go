package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendFirstBecomesMain(t *testing.T) {
	gallery, main := Append(nil, NoMain, "a.jpg")
	assert.Equal(t, []string{"a.jpg"}, gallery)
	assert.Equal(t, 0, main)

	gallery, main = Append(gallery, main, "b.jpg")
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, gallery)
	assert.Equal(t, 0, main, "l'image principale ne change pas aux ajouts suivants")
}

func TestRemoveMainFallsBackToFirst(t *testing.T) {
	gallery := []string{"a.jpg", "b.jpg", "c.jpg"}
	gallery, main := RemoveAt(gallery, 1, 1)
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, gallery)
	assert.Equal(t, 0, main)
}

func TestRemoveBeforeMainShiftsIndex(t *testing.T) {
	gallery := []string{"a.jpg", "b.jpg", "c.jpg"}
	gallery, main := RemoveAt(gallery, 2, 0)
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, gallery)
	assert.Equal(t, 1, main, "l'index doit continuer à désigner c.jpg")
	assert.Equal(t, "c.jpg", gallery[main])
}

func TestRemoveAfterMainKeepsIndex(t *testing.T) {
	gallery := []string{"a.jpg", "b.jpg", "c.jpg"}
	gallery, main := RemoveAt(gallery, 0, 2)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, gallery)
	assert.Equal(t, 0, main)
}

func TestRemoveLastImageClearsMain(t *testing.T) {
	gallery := []string{"a.jpg"}
	gallery, main := RemoveAt(gallery, 0, 0)
	assert.Empty(t, gallery)
	assert.Equal(t, NoMain, main)
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	gallery := []string{"a.jpg"}
	out, main := RemoveAt(gallery, 0, 5)
	assert.Equal(t, gallery, out)
	assert.Equal(t, 0, main)
}
