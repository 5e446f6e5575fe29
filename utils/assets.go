package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// spotlightAssetsPath is the asset cache location relative to the user profile
const spotlightAssetsPath = "AppData/Local/Packages/Microsoft.Windows.ContentDeliveryManager_cw5n1h2txyewy/LocalState/Assets"

// DefaultAssetDir returns the Windows Spotlight asset cache for the current user
func DefaultAssetDir() (string, error) {
	return assetDirFor(os.Getenv("USERPROFILE"))
}

func assetDirFor(profile string) (string, error) {
	if profile == "" {
		return "", fmt.Errorf("USERPROFILE is not set. %s", getSourceInstructions())
	}
	return filepath.Join(profile, filepath.FromSlash(spotlightAssetsPath)), nil
}

// ValidateSourceDir checks that dir exists and is a directory
func ValidateSourceDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset cache %s is not accessible: %w. %s", dir, err, getSourceInstructions())
	}
	if !fi.IsDir() {
		return fmt.Errorf("asset cache %s is not a directory. %s", dir, getSourceInstructions())
	}
	return nil
}

// DefaultOutputDir suggests where extracted wallpapers should go
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Spotlight"
	}
	return filepath.Join(home, "Pictures", "Spotlight")
}

// getSourceInstructions returns platform-specific hints for locating the asset cache
func getSourceInstructions() string {
	switch runtime.GOOS {
	case "windows":
		return "Enable Windows Spotlight under Settings > Personalization > Lock screen, or pass --source"
	default:
		return "Windows Spotlight only exists on Windows; copy the Assets folder over and pass --source"
	}
}
