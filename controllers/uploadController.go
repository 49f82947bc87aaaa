package controllers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nfnt/resize"
)

const (
	maxFileSize       = 5 * 1024 * 1024
	compressThreshold = 100 * 1024
	previewSize       = 300
)

var (
	s3Client *minio.Client
	s3Once   sync.Once
	s3Err    error
)

func getS3Client() (*minio.Client, error) {
	s3Once.Do(func() {
		s3Client, s3Err = minio.New(os.Getenv("S3_ENDPOINT"), &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
			Secure: true,
		})
	})
	return s3Client, s3Err
}

// UploadImage stores a product image in S3-compatible storage and returns
// the CDN URLs of the full image and a small preview. Large uploads are
// re-encoded at reduced size before storing.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image in request"})
		return
	}

	if file.Size > maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds the 5MB limit"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported file format: %s", contentType)})
		return
	}

	client, err := getS3Client()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage is not configured"})
		return
	}

	srcFile, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer srcFile.Close()

	originalData, err := io.ReadAll(srcFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image data"})
		return
	}

	var img image.Image
	if contentType == "image/png" {
		img, err = png.Decode(bytes.NewReader(originalData))
	} else {
		img, err = jpeg.Decode(bytes.NewReader(originalData))
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to decode image"})
		return
	}

	fileExt := strings.ToLower(filepath.Ext(file.Filename))
	baseName := fmt.Sprintf("products/%s", uuid.NewString())
	mainFilename := baseName + fileExt
	previewFilename := baseName + "_preview" + fileExt
	bucket := os.Getenv("S3_BUCKET")

	var bufMain bytes.Buffer
	if file.Size >= compressThreshold {
		resizedMain := resize.Resize(800, 0, img, resize.Lanczos3)
		if err := jpeg.Encode(&bufMain, resizedMain, &jpeg.Options{Quality: 80}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode resized image"})
			return
		}
	} else {
		bufMain.Write(originalData)
	}

	_, err = client.PutObject(context.Background(), bucket, mainFilename, &bufMain, int64(bufMain.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	previewImg := resize.Thumbnail(previewSize, previewSize, img, resize.Lanczos3)
	var bufPreview bytes.Buffer
	if err := jpeg.Encode(&bufPreview, previewImg, &jpeg.Options{Quality: 75}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode preview image"})
		return
	}
	_, err = client.PutObject(context.Background(), bucket, previewFilename, &bufPreview, int64(bufPreview.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload preview image"})
		return
	}

	cdnDomain := os.Getenv("S3_CDN_DOMAIN")
	c.JSON(http.StatusOK, gin.H{
		"url":        fmt.Sprintf("https://%s/%s", cdnDomain, mainFilename),
		"previewUrl": fmt.Sprintf("https://%s/%s", cdnDomain, previewFilename),
	})
}
