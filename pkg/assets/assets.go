package assets

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// ExportConfig holds configuration for asset export.
type ExportConfig struct {
	Format    string  // "png", "svg", "jpg", "pdf"
	Scale     float64 // export multiplier; forced to 1 for svg/pdf
	OutputDir string  // local directory, default "assets"
}

// Asset represents a single downloaded image asset.
type Asset struct {
	NodeID   string
	NodeName string
	FileName string
	Format   string
	Scale    float64
}

// Result holds the outcome of an export operation.
type Result struct {
	Assets []Asset
	Errors []error // non-fatal per-image download failures
}

const maxNodesPerRequest = 100
const maxParallelDownloads = 5

// CollectMediaNodes walks the node tree and returns a map of nodeID ->
// nodeName for nodes carrying a visible IMAGE fill. These are the nodes
// the generated markup renders as media elements, so exporting exactly
// this set gives every generated src a backing file.
func CollectMediaNodes(root *figma.Node) map[string]string {
	nodes := make(map[string]string)
	collectMedia(root, nodes)
	return nodes
}

func collectMedia(node *figma.Node, nodes map[string]string) {
	if node.HasVisibleImageFill() {
		nodes[node.ID] = node.Name
	}
	for i := range node.Children {
		collectMedia(&node.Children[i], nodes)
	}
}

// Export renders the given nodes through the Figma image API and downloads
// the results: creates the output directory, batches API requests, and
// downloads images concurrently. API failures abort the export; individual
// download failures are collected in Result.Errors.
func Export(client *figma.Client, fileKey string, nodes map[string]string, config ExportConfig) (*Result, error) {
	result := &Result{}
	if len(nodes) == 0 {
		return result, nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", config.OutputDir, err)
	}

	// Sorted IDs keep batching and collision suffixes stable between runs.
	nodeIDs := make([]string, 0, len(nodes))
	for id := range nodes {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)

	// Vector formats ignore the multiplier.
	scale := config.Scale
	if scale <= 0 || config.Format == "svg" || config.Format == "pdf" {
		scale = 1
	}

	usedNames := make(map[string]int) // track filename collisions

	for i := 0; i < len(nodeIDs); i += maxNodesPerRequest {
		end := i + maxNodesPerRequest
		if end > len(nodeIDs) {
			end = len(nodeIDs)
		}
		batch := nodeIDs[i:end]

		imgResp, err := client.GetImages(fileKey, batch, config.Format, scale)
		if err != nil {
			return nil, fmt.Errorf("failed to get images from Figma API: %w", err)
		}

		// Resolve names while still single-threaded, then download
		// concurrently with a semaphore.
		type download struct {
			nodeID   string
			nodeName string
			fileName string
			url      string
		}
		var downloads []download

		for _, nodeID := range batch {
			imageURL := imgResp.Images[nodeID]
			if imageURL == "" {
				result.Errors = append(result.Errors, fmt.Errorf("no image URL returned for node %s", nodeID))
				continue
			}

			fileName := FileNameFor(nodes[nodeID], nodeID, config.Format, scale)
			if count, exists := usedNames[fileName]; exists {
				ext := filepath.Ext(fileName)
				base := strings.TrimSuffix(fileName, ext)
				fileName = fmt.Sprintf("%s-%d%s", base, count+1, ext)
				usedNames[fileName] = count + 1
			} else {
				usedNames[fileName] = 1
			}

			downloads = append(downloads, download{nodeID, nodes[nodeID], fileName, imageURL})
		}

		var wg sync.WaitGroup
		sem := make(chan struct{}, maxParallelDownloads)
		var mu sync.Mutex

		for _, d := range downloads {
			wg.Add(1)
			go func(d download) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				destPath := filepath.Join(config.OutputDir, d.fileName)
				if err := downloadFile(d.url, destPath); err != nil {
					mu.Lock()
					result.Errors = append(result.Errors, fmt.Errorf("failed to download %s: %w", d.nodeName, err))
					mu.Unlock()
					return
				}

				mu.Lock()
				result.Assets = append(result.Assets, Asset{
					NodeID:   d.nodeID,
					NodeName: d.nodeName,
					FileName: d.fileName,
					Format:   config.Format,
					Scale:    scale,
				})
				mu.Unlock()
			}(d)
		}

		wg.Wait()
	}

	sort.Slice(result.Assets, func(i, j int) bool {
		return result.Assets[i].NodeID < result.Assets[j].NodeID
	})

	return result, nil
}

// downloadFile performs an HTTP GET and saves the response body to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d downloading image", resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", destPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("failed to write file %q: %w", destPath, err)
	}

	return nil
}

// FileNameFor creates a sanitized filename for a node's exported image.
// Uses kebab-case, adds a @2x/@3x style suffix for raster scales > 1, and
// falls back to the sanitized node ID (then "asset") when the name yields
// nothing. At scale 1 the result matches the src paths the markup
// synthesizer writes for media elements.
func FileNameFor(nodeName, nodeID, format string, scale float64) string {
	name := toKebabCase(nodeName)
	if name == "" {
		name = toKebabCase(nodeID)
	}
	if name == "" {
		name = "asset"
	}

	scaleSuffix := ""
	if scale > 1 && format != "svg" && format != "pdf" {
		scaleSuffix = fmt.Sprintf("@%gx", scale)
	}

	return fmt.Sprintf("%s%s.%s", name, scaleSuffix, format)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
