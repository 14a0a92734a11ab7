// Package backup stores snapshots of the record store on a backup
// destination and restores them. Destinations are addressed through the
// Provider interface so the rest of the app never cares whether snapshots
// land in a local directory or a remote drive.
package backup

import (
	"context"
	"time"
)

// FileInfo describes one stored backup file
type FileInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ModifiedTime time.Time `json:"modified_time"`
}

// Provider stores and retrieves named blobs in folders. Files are
// addressed by opaque ID, never by path.
type Provider interface {
	// Upload stores data under filename inside folder, creating the folder
	// if needed, and returns the file's ID
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)

	// List returns the files in folder whose names start with prefix,
	// newest first
	List(ctx context.Context, folder, prefix string) ([]FileInfo, error)

	// Download returns the contents of the file with the given ID
	Download(ctx context.Context, fileID string) ([]byte, error)
}
