package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"lumira_back_end/internal/database"
	"lumira_back_end/internal/models"
)

// Durée de vie des URLs signées servies au storefront.
const signedURLTTL = 1 * time.Hour

// MinIOStorage implémente ObjectStorage au-dessus du client MinIO global.
type MinIOStorage struct{}

// Put envoie un objet dans le bucket images et retourne son URL durable.
func (MinIOStorage) Put(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}
	bucket := os.Getenv("MINIO_BUCKET")

	_, err := database.MinIO.PutObject(ctx, bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}

// objectKey extrait la clé d'objet d'une URL durable du bucket images.
// Une URL qui ne pointe pas dans le bucket n'est pas signable.
func objectKey(objectPath string) (string, bool) {
	prefix := fmt.Sprintf("http://%s/%s/", os.Getenv("MINIO_ENDPOINT"), os.Getenv("MINIO_BUCKET"))
	if !strings.HasPrefix(objectPath, prefix) {
		return "", false
	}
	return strings.TrimPrefix(objectPath, prefix), true
}

// GenerateSignedURL génère une URL signée à durée limitée pour servir une
// image au storefront. Une URL externe au bucket est retournée telle quelle.
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	key, ok := objectKey(objectPath)
	if !ok {
		return objectPath, nil
	}

	presignedURL, err := database.MinIO.PresignedGetObject(ctx, os.Getenv("MINIO_BUCKET"), key, duration, make(url.Values))
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

// SignProductImages remplace les URLs stockées d'un produit par des URLs
// signées avant de le servir. Sans client MinIO, ou si la signature d'une
// URL échoue, l'URL stockée est servie telle quelle.
func SignProductImages(ctx context.Context, p *models.Product) {
	if database.MinIO == nil {
		return
	}
	if signed, err := GenerateSignedURL(ctx, p.Image, signedURLTTL); err == nil {
		p.Image = signed
	}
	for i, u := range p.Images {
		if signed, err := GenerateSignedURL(ctx, u, signedURLTTL); err == nil {
			p.Images[i] = signed
		}
	}
}
