package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"lumira_back_end/internal/apperrors"
)

// ObjectStorage est la destination des images acceptées (MinIO en
// production, un faux en test).
type ObjectStorage interface {
	Put(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}

// UploadFile est un fichier candidat, quelle que soit sa provenance
// (sélecteur de fichiers, glisser-déposer, collage).
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// BatchResult porte le résultat d'un lot : les URLs des images acceptées et
// une erreur par fichier refusé. Les uploads réussis ne sont jamais annulés.
type BatchResult struct {
	URLs   []string
	Errors []error
}

// ErrorMessage agrège les refus du lot en un seul message.
func (r BatchResult) ErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, " ; ")
}

// IntakePipeline valide, compresse au besoin, puis envoie les images vers le
// stockage externe. Les fichiers d'un lot sont traités séquentiellement pour
// garder une attribution d'erreur par fichier simple.
type IntakePipeline struct {
	Storage ObjectStorage

	MaxBytes    int // plafond dur au-delà duquel un fichier est refusé
	TargetBytes int // taille visée après recompression
	MaxEdge     int // plus grand côté après redimensionnement
}

// NewIntakePipeline construit le pipeline avec les limites de production :
// plafond 10 Mo, recompression visant ≤ 1 Mo et ≤ 1920 px de plus grand côté.
func NewIntakePipeline(storage ObjectStorage) *IntakePipeline {
	return &IntakePipeline{
		Storage:     storage,
		MaxBytes:    10 << 20,
		TargetBytes: 1 << 20,
		MaxEdge:     1920,
	}
}

// ProcessBatch traite chaque fichier du lot. Un refus n'interrompt pas le
// reste du lot.
func (p *IntakePipeline) ProcessBatch(ctx context.Context, files []UploadFile) BatchResult {
	var result BatchResult
	for _, f := range files {
		url, err := p.processOne(ctx, f)
		if err != nil {
			log.Printf("⚠️ Upload refusé (%s): %v", f.Name, err)
			result.Errors = append(result.Errors, err)
			continue
		}
		result.URLs = append(result.URLs, url)
	}
	return result
}

func (p *IntakePipeline) processOne(ctx context.Context, f UploadFile) (string, error) {
	contentType := f.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(f.Data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.UploadRejected("Le fichier '%s' n'est pas une image", f.Name)
	}

	data := f.Data
	ext := extensionFor(f.Name, contentType)
	if len(data) > p.MaxBytes {
		compressed, err := p.compress(data)
		if err != nil || len(compressed) > p.MaxBytes {
			return "", apperrors.UploadRejected("L'image '%s' est trop lourde (%.1f Mo)", f.Name, float64(len(f.Data))/(1<<20))
		}
		data = compressed
		contentType = "image/jpeg"
		ext = ".jpg"
	}

	objectName := fmt.Sprintf("products/%d%s", time.Now().UnixNano(), ext)
	url, err := p.Storage.Put(ctx, objectName, contentType, data)
	if err != nil {
		return "", apperrors.UploadTransport(err)
	}
	return url, nil
}

// compress décode l'image, ramène son plus grand côté à MaxEdge, puis la
// réencode en JPEG en baissant la qualité jusqu'à passer sous TargetBytes.
func (p *IntakePipeline) compress(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > p.MaxEdge || h > p.MaxEdge {
		scale := float64(p.MaxEdge) / float64(max(w, h))
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var out []byte
	for quality := 85; quality >= 40; quality -= 15 {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
		out = buf.Bytes()
		if len(out) <= p.TargetBytes {
			break
		}
	}
	return out, nil
}

func extensionFor(name, contentType string) string {
	if ext := filepath.Ext(name); ext != "" {
		return strings.ToLower(ext)
	}
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
