package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var cld *cloudinary.Cloudinary

// InitCloudinary sets up the Cloudinary client and verifies the
// credentials with a ping.
func InitCloudinary() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("cloudinary environment variables are not set")
	}

	var err error
	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("initializing cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err = cld.Admin.Ping(ctx); err != nil {
		return fmt.Errorf("verifying cloudinary connection: %v", err)
	}

	LogSuccess("Cloudinary initialized")
	return nil
}

func boolPointer(b bool) *bool {
	return &b
}

func isValidImageType(filename string) bool {
	validExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}
	lowerFilename := strings.ToLower(filename)

	for _, ext := range validExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// UploadImage sends an image to Cloudinary and returns its public URL. The
// prefix names the kind of asset (avatar, logo) inside the folder.
func UploadImage(file *multipart.FileHeader, folder string, prefix string) (string, error) {
	if !isValidImageType(file.Filename) {
		return "", fmt.Errorf("unsupported image format, use JPG, PNG, GIF, WEBP or SVG")
	}

	// 10MB cap
	if file.Size > 10*1024*1024 {
		return "", fmt.Errorf("image too large, 10MB maximum")
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return "", err
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("%s_%s", prefix, uuid.New().String())

	uploadResult, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:         folder,
		PublicID:       publicID,
		UseFilename:    boolPointer(false),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(false),
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("uploading to cloudinary: %v", err)
	}

	if uploadResult.SecureURL == "" {
		return "", fmt.Errorf("empty secure URL in cloudinary response")
	}

	return uploadResult.SecureURL, nil
}

// DeleteImage removes a previously uploaded image given its public URL.
func DeleteImage(imageURL string) error {
	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return err
		}
	}

	publicID := publicIDFromURL(imageURL)
	if publicID == "" {
		return fmt.Errorf("cannot extract public id from URL: %s", imageURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// publicIDFromURL extracts "<folder>/<name>" from a delivery URL of the
// shape .../upload/v123/<folder>/<name>.<ext>.
func publicIDFromURL(imageURL string) string {
	parts := strings.Split(imageURL, "/upload/")
	if len(parts) != 2 {
		return ""
	}
	path := parts[1]
	if idx := strings.Index(path, "/"); idx >= 0 && strings.HasPrefix(path, "v") {
		path = path[idx+1:]
	}
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		path = path[:idx]
	}
	return path
}
