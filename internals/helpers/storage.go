package helper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"belajarku_backend/internals/configs"
)

var storageClient = &http.Client{Timeout: 15 * time.Second}

// UploadToSupabase mengunggah objek ke Supabase Storage dan mengembalikan public URL.
func UploadToSupabase(bucket, objectPath, contentType string, body *bytes.Buffer) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		configs.SupabaseProjectURL, bucket, url.PathEscape(objectPath))

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body.Bytes()))
	if err != nil {
		return "", fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := storageClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload gagal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload gagal (%d): %s", resp.StatusCode, string(msg))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		configs.SupabaseProjectURL, bucket, url.PathEscape(objectPath))
	return publicURL, nil
}

// DeleteFromSupabase menghapus objek lama; dipakai best-effort saat ganti avatar.
func DeleteFromSupabase(bucket, objectPath string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		configs.SupabaseProjectURL, bucket, url.PathEscape(objectPath))

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)

	resp, err := storageClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delete gagal (%d)", resp.StatusCode)
	}
	return nil
}

// ObjectPathFromPublicURL mengambil path objek dari public URL milik bucket yang sama.
func ObjectPathFromPublicURL(publicURL, bucket string) (string, bool) {
	marker := "/storage/v1/object/public/" + bucket + "/"
	idx := strings.Index(publicURL, marker)
	if idx == -1 {
		return "", false
	}
	path, err := url.PathUnescape(publicURL[idx+len(marker):])
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// GenerateUniqueFilename membuat nama objek unik di dalam folder.
func GenerateUniqueFilename(folder, original string) string {
	base := unsafeFilename.ReplaceAllString(filepath.Base(original), "-")
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("%s/%s-%s%s", strings.Trim(folder, "/"), name, uuid.NewString()[:8], ext)
}
