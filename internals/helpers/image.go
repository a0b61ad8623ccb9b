package helper

import (
	"bytes"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	maxAvatarBytes = 2 << 20 // 2MB
	avatarMaxSide  = 512
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// ValidateImageUpload memeriksa tipe dan ukuran file avatar.
func ValidateImageUpload(fh *multipart.FileHeader) error {
	if fh.Size > maxAvatarBytes {
		return fmt.Errorf("ukuran gambar melebihi 2MB (%dKB)", fh.Size/1024)
	}
	contentType := fh.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return fmt.Errorf("tipe file %q tidak didukung (jpeg/png/gif/webp)", contentType)
	}
	return nil
}

// ConvertToWebP men-decode gambar, resize maksimal 512px, lalu encode ulang ke webp.
// Hemat storage dan seragam untuk semua avatar.
func ConvertToWebP(fh *multipart.FileHeader) (*bytes.Buffer, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("gagal decode gambar: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > avatarMaxSide || bounds.Dy() > avatarMaxSide {
		img = imaging.Fit(img, avatarMaxSide, avatarMaxSide, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf, nil
}
