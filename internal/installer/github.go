package installer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"bootstrap-machine/internal/catalog"
	"bootstrap-machine/internal/logger"
)

// githubRelease represents the structure of a GitHub release JSON response.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// archiveSuffixes are the asset formats the extractor understands.
var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".zip", ".7z"}

// installFromGitHub handles catalog entries that bypass the package manager
// and install straight from a GitHub release. Like every install path, the
// result is always an Outcome: any failure along the way (release lookup,
// download, extraction, placement) is converted to data here.
func installFromGitHub(entry catalog.Entry) Outcome {
	path, err := placeReleaseBinary(entry)
	if err != nil {
		return Outcome{Subject: entry.Name, Detail: err.Error()}
	}
	logger.Debug("[DEBUG] Placed %s at %s\n", entry.Name, path)
	return Outcome{Succeeded: true, Subject: entry.Name}
}

// placeReleaseBinary resolves the release, downloads the OS/arch-matching
// asset, extracts it, and copies the executable onto PATH. Returns the
// installed path.
func placeReleaseBinary(entry catalog.Entry) (string, error) {
	repo := entry.Repo
	if repo == "" {
		repo = entry.Name
	}
	tag := entry.Tag
	if tag == "" && entry.Pinned() {
		tag = "v" + strings.TrimPrefix(entry.Version, "v")
	}

	// Pinned entries name their tag; unpinned ones take the latest release.
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repo)
	if tag != "" {
		url = fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", repo, tag)
	}
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("HTTP GET error fetching release for %s: %w", entry.Name, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub release fetch failed for %s: HTTP status %d", entry.Name, resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode GitHub release JSON for %s: %w", entry.Name, err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))

	assetName, assetURL := matchAsset(release)
	if assetURL == "" {
		return "", fmt.Errorf("no asset matching %s/%s in release %s of %s",
			runtime.GOOS, runtime.GOARCH, release.TagName, repo)
	}

	// Download the asset into the scratch directory.
	archivePath := filepath.Join(os.TempDir(), assetName)
	logger.Debug("[DEBUG] Downloading asset %s to %s\n", assetName, archivePath)
	if err := downloadFile(assetURL, archivePath); err != nil {
		return "", err
	}

	binary, err := extractExecutable(archivePath, os.TempDir(), entry.Name)
	if err != nil {
		return "", err
	}
	return placeOnPath(binary)
}

// matchAsset picks the release asset for the local OS and architecture.
// Asset names in the wild spell the pair a few different ways, so a small
// set of patterns is tried in order of preference.
func matchAsset(release githubRelease) (name, url string) {
	osys := runtime.GOOS
	arch := runtime.GOARCH

	patterns := []string{
		osys + "_" + arch,
		osys + "-" + arch,
	}
	// arm64 assets are frequently labeled aarch64, and macOS ones "macos".
	if arch == "arm64" {
		patterns = append(patterns, osys+"_aarch64", osys+"-aarch64", "aarch64-apple-"+osys)
	}
	if osys == "darwin" {
		patterns = append(patterns, "macos_"+arch, "macos-"+arch, "macos")
	}

	for _, pattern := range patterns {
		for _, asset := range release.Assets {
			lower := strings.ToLower(asset.Name)
			if !strings.Contains(lower, pattern) {
				continue
			}
			for _, suffix := range archiveSuffixes {
				if strings.HasSuffix(lower, suffix) {
					logger.Debug("[DEBUG] Found matching asset: %s\n", asset.Name)
					return asset.Name, asset.BrowserDownloadURL
				}
			}
		}
	}
	return "", ""
}

// downloadFile downloads the content at url and saves it to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}
	return nil
}

// placeOnPath copies an extracted binary into /usr/local/bin, falling back
// to ~/bin when the system directory is not writable. Returns the final
// installed path.
func placeOnPath(binary string) (string, error) {
	name := filepath.Base(binary)

	dest := filepath.Join("/usr/local/bin", name)
	if err := copyExecutable(binary, dest); err == nil {
		return dest, nil
	}

	homeBin := filepath.Join(os.Getenv("HOME"), "bin")
	if err := os.MkdirAll(homeBin, 0755); err != nil {
		return "", fmt.Errorf("cannot create fallback bin directory: %w", err)
	}
	dest = filepath.Join(homeBin, name)
	if err := copyExecutable(binary, dest); err != nil {
		return "", fmt.Errorf("failed to copy binary to fallback location: %w", err)
	}
	return dest, nil
}

// copyExecutable copies src to dst with executable permissions.
func copyExecutable(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
