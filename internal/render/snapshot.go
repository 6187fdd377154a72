package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// SnapshotTimeout is the maximum time to wait for the headless browser to
// load the page and draw the figure.
const SnapshotTimeout = 60 * time.Second

// Snapshot loads a rendered page in a headless browser and writes a PNG of
// the figure element to pngPath. Requires Chrome/Chromium to be installed
// on the system.
func Snapshot(ctx context.Context, htmlPath, pngPath string) error {
	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return &SnapshotError{
			Message: fmt.Sprintf("failed to resolve page path: %s", htmlPath),
			Cause:   err,
		}
	}
	pageURL := "file://" + absPath

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, SnapshotTimeout)
	defer cancel()

	var png []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(1920, 1080),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		// Give plotly time to draw the map before capturing.
		chromedp.Sleep(2*time.Second),
		chromedp.Screenshot("#bubble-map", &png, chromedp.NodeVisible),
	)
	if err != nil {
		return &SnapshotError{
			Message: "headless browser capture failed",
			Cause:   err,
		}
	}

	if err := os.WriteFile(pngPath, png, 0644); err != nil {
		return &SnapshotError{
			Message: fmt.Sprintf("failed to write snapshot: %s", pngPath),
			Cause:   err,
		}
	}
	return nil
}
