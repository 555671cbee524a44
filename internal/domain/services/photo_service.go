package services

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/webp"

	"amdaops-http-service/internal/infrastructure/config"
	"amdaops-http-service/pkg/logger"
)

// AllowedPhotoExts are the upload extensions accepted for officer photos.
var AllowedPhotoExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// PhotoUpload is an uploaded image waiting to be stored.
type PhotoUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// InterfacePhotoService defines the officer photo storage interface
type InterfacePhotoService interface {
	Save(officerID string, upload *PhotoUpload) (string, error)
	Delete(path string) error
	Resolve(path string) (string, error)
	Dir() string
}

// PhotoService 将上传的照片统一转码为 {id}.png 存储
type PhotoService struct {
	dir      string
	maxBytes int64
}

// NewPhotoService 创建照片服务
func NewPhotoService(cfg *config.Config) InterfacePhotoService {
	max := cfg.MaxPhotoBytes
	if max <= 0 {
		max = 5 << 20
	}
	return &PhotoService{dir: cfg.PhotosDir, maxBytes: max}
}

// Dir returns the photos directory.
func (s *PhotoService) Dir() string { return s.dir }

// 1 Save decodes the upload, flattens it onto an opaque white background
// and writes it as PNG named after the officer. It returns the stored path.
func (s *PhotoService) Save(officerID string, upload *PhotoUpload) (string, error) {
	if upload == nil || upload.Reader == nil {
		return "", invalid("photo", "is empty")
	}
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !AllowedPhotoExts[ext] {
		return "", ErrPhotoUnsupported
	}
	if upload.Size > s.maxBytes {
		return "", ErrPhotoTooLarge
	}

	raw, err := io.ReadAll(io.LimitReader(upload.Reader, s.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(raw)) > s.maxBytes {
		return "", ErrPhotoTooLarge
	}

	img, err := decodeImageWithWebPFallback(raw)
	if err != nil {
		return "", ErrPhotoUnsupported
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, flattenOnWhite(img)); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}
	dest := filepath.Join(s.dir, officerID+".png")
	tmp, err := os.CreateTemp(s.dir, "."+officerID+".tmp-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return dest, nil
}

// 2 Delete removes a stored photo. Missing files and paths outside the
// photos directory are ignored.
func (s *PhotoService) Delete(path string) error {
	if path == "" {
		return nil
	}
	resolved, err := s.Resolve(path)
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			return nil
		}
		logger.L().Warn("refusing to delete photo outside photos dir", zap.String("path", path))
		return nil
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// 3 Resolve checks that path is an existing file inside the photos directory.
func (s *PhotoService) Resolve(path string) (string, error) {
	if path == "" {
		return "", ErrPhotoNotFound
	}
	dirAbs, err := filepath.Abs(s.dir)
	if err != nil {
		return "", err
	}
	p := path
	if !filepath.IsAbs(p) && !strings.HasPrefix(filepath.Clean(p), filepath.Clean(s.dir)) {
		p = filepath.Join(s.dir, filepath.Base(p))
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(dirAbs, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("photo path outside photos directory")
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", ErrPhotoNotFound
	}
	return abs, nil
}

func decodeImageWithWebPFallback(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}
	if decoded, webpErr := webp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, nil
	}
	return nil, err
}

// flattenOnWhite composites img over an opaque white canvas so alpha and
// palette images come out as plain RGB.
func flattenOnWhite(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
