package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImageFilename checks an uploaded image filename against the
// extension allow-list and returns the normalized extension.
func ValidateImageFilename(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q (allowed: jpg, jpeg, png, gif, webp)", ext)
	}
	return ext, nil
}
