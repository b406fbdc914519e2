package coverart

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"sync"
	"time"

	"github.com/qeesung/image2ascii/convert"
)

// Converter turns album cover art into ASCII for terminal display.
type Converter struct {
	httpClient *http.Client
	converter  *convert.ImageConverter

	mu       sync.Mutex
	lastURL  string
	lastArt  string
}

// NewConverter creates a cover art converter with its own short-timeout
// transport; cover fetches must never stall the UI for long.
func NewConverter() *Converter {
	return &Converter{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		converter: convert.NewImageConverter(),
	}
}

// ConvertFromURL downloads the image and renders it as colored ASCII sized to
// width x height cells. The last successful conversion is cached per URL so
// redraws of the same cover are free.
func (c *Converter) ConvertFromURL(url string, width, height int) (string, error) {
	c.mu.Lock()
	if url == c.lastURL && c.lastArt != "" {
		art := c.lastArt
		c.mu.Unlock()
		return art, nil
	}
	c.mu.Unlock()

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch cover art: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch cover art: unexpected status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decode cover art: %w", err)
	}

	options := convert.DefaultOptions
	options.FixedWidth = width
	options.FixedHeight = height
	options.Colored = true
	art := c.converter.Image2ASCIIString(img, &options)

	c.mu.Lock()
	c.lastURL = url
	c.lastArt = art
	c.mu.Unlock()
	return art, nil
}
