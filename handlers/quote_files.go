package handlers

import (
	"log"
	"net/http"
	"path"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/jackhoang99/airlast-s-management-sub003/services"
)

// HandleFileDownload serves generated PDFs from storage. Access requires a
// signed token whose path claim matches the requested file exactly.
func HandleFileDownload(app *pocketbase.PocketBase, urlSecret []byte) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		fileKey := e.Request.PathValue("path")
		if fileKey == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "missing file path"})
		}

		token := e.Request.URL.Query().Get("token")
		if token == "" {
			return e.JSON(http.StatusUnauthorized, map[string]any{"error": "missing token"})
		}

		claimedPath, err := services.VerifyFileToken(urlSecret, token)
		if err != nil || claimedPath != fileKey {
			return e.JSON(http.StatusUnauthorized, map[string]any{"error": "invalid or expired token"})
		}

		fsys, err := app.NewFilesystem()
		if err != nil {
			log.Printf("file_download: filesystem: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "storage unavailable"})
		}
		defer fsys.Close()

		if err := fsys.Serve(e.Response, e.Request, fileKey, path.Base(fileKey)); err != nil {
			log.Printf("file_download: serve %s: %v", fileKey, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "file not found"})
		}
		return nil
	}
}
