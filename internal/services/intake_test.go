package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumira_back_end/internal/apperrors"
)

// fakeStorage enregistre les objets reçus sans réseau.
type fakeStorage struct {
	objects map[string][]byte
	fail    bool
}

func (f *fakeStorage) Put(_ context.Context, objectName, _ string, data []byte) (string, error) {
	if f.fail {
		return "", errors.New("connexion refusée")
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[objectName] = data
	return "http://minio.test/lumira-images/" + objectName, nil
}

// noisePNG fabrique un PNG de bruit, quasi incompressible, pour dépasser les
// plafonds du pipeline de test.
func noisePNG(t *testing.T, size int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// testPipeline réduit les plafonds pour ne pas manipuler 10 Mo en test.
func testPipeline(storage ObjectStorage) *IntakePipeline {
	return &IntakePipeline{Storage: storage, MaxBytes: 50 << 10, TargetBytes: 40 << 10, MaxEdge: 128}
}

func TestRejectsNonImage(t *testing.T) {
	storage := &fakeStorage{}
	p := testPipeline(storage)

	result := p.ProcessBatch(context.Background(), []UploadFile{
		{Name: "notes.txt", ContentType: "text/plain", Data: []byte("bonjour")},
	})

	assert.Empty(t, result.URLs)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], apperrors.ErrUploadRejected)
	assert.Contains(t, result.Errors[0].Error(), "notes.txt")
	assert.Empty(t, storage.objects, "rien ne doit être uploadé")
}

func TestOversizedImageIsCompressedThenAccepted(t *testing.T) {
	storage := &fakeStorage{}
	p := testPipeline(storage)

	data := noisePNG(t, 256) // largement au-dessus du plafond de test
	require.Greater(t, len(data), p.MaxBytes)

	result := p.ProcessBatch(context.Background(), []UploadFile{
		{Name: "bague.png", ContentType: "image/png", Data: data},
	})

	require.Empty(t, result.Errors, result.ErrorMessage())
	require.Len(t, result.URLs, 1)
	for name, stored := range storage.objects {
		assert.LessOrEqual(t, len(stored), p.MaxBytes)
		assert.Contains(t, name, ".jpg", "la recompression produit du JPEG")
	}
}

func TestSmallImagePassesThroughUntouched(t *testing.T) {
	storage := &fakeStorage{}
	p := testPipeline(storage)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	original := buf.Bytes()

	result := p.ProcessBatch(context.Background(), []UploadFile{
		{Name: "petite.png", ContentType: "image/png", Data: original},
	})

	require.Len(t, result.URLs, 1)
	for _, stored := range storage.objects {
		assert.Equal(t, original, stored, "sous le plafond, les octets sont intacts")
	}
}

func TestBatchContinuesAfterRejection(t *testing.T) {
	storage := &fakeStorage{}
	p := testPipeline(storage)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	result := p.ProcessBatch(context.Background(), []UploadFile{
		{Name: "doc.pdf", ContentType: "application/pdf", Data: []byte("%PDF-")},
		{Name: "ok.png", ContentType: "image/png", Data: buf.Bytes()},
	})

	assert.Len(t, result.URLs, 1, "le refus du premier fichier ne bloque pas le second")
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.ErrorMessage(), "doc.pdf")
}

func TestStorageFailureIsTransportError(t *testing.T) {
	p := testPipeline(&fakeStorage{fail: true})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	result := p.ProcessBatch(context.Background(), []UploadFile{
		{Name: "ok.png", ContentType: "image/png", Data: buf.Bytes()},
	})

	assert.Empty(t, result.URLs)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], apperrors.ErrUploadTransport)
}

func TestSniffsContentTypeWhenMissing(t *testing.T) {
	storage := &fakeStorage{}
	p := testPipeline(storage)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	result := p.ProcessBatch(context.Background(), []UploadFile{
		{Name: "collé", Data: buf.Bytes()}, // collage presse-papiers sans type
	})

	assert.Len(t, result.URLs, 1)
	assert.Empty(t, result.Errors)
}
