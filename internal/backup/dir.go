package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// indexFile maps opaque file IDs to folder and name, so IDs stay stable
// across restarts.
const indexFile = ".index.json"

type indexEntry struct {
	Folder string `json:"folder"`
	Name   string `json:"name"`
}

// DirProvider implements Provider on a local directory tree. Folders are
// subdirectories created on demand.
type DirProvider struct {
	mu   sync.Mutex
	base string
}

// NewDirProvider returns a provider rooted at base. The directory is
// created on first upload.
func NewDirProvider(base string) *DirProvider {
	return &DirProvider{base: base}
}

// Upload writes data under filename inside folder. Uploading the same
// name into the same folder again overwrites the file and keeps its ID.
func (d *DirProvider) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", ErrEmptyFilename
	}
	if strings.TrimSpace(folder) == "" {
		return "", ErrEmptyFolder
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	dir := filepath.Join(d.base, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup folder: %w", err)
	}

	path := filepath.Join(dir, filename)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to replace backup file: %w", err)
	}

	index, err := d.loadIndex()
	if err != nil {
		return "", err
	}

	for id, entry := range index {
		if entry.Folder == folder && entry.Name == filename {
			return id, nil
		}
	}

	id := uuid.NewString()
	index[id] = indexEntry{Folder: folder, Name: filename}
	if err := d.saveIndex(index); err != nil {
		return "", err
	}

	return id, nil
}

// List returns the files in folder matching prefix, newest first. Index
// entries whose file has disappeared are skipped.
func (d *DirProvider) List(ctx context.Context, folder, prefix string) ([]FileInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	index, err := d.loadIndex()
	if err != nil {
		return nil, err
	}

	files := []FileInfo{}
	for id, entry := range index {
		if entry.Folder != folder || !strings.HasPrefix(entry.Name, prefix) {
			continue
		}

		info, err := os.Stat(filepath.Join(d.base, entry.Folder, entry.Name))
		if err != nil {
			continue
		}

		files = append(files, FileInfo{ID: id, Name: entry.Name, ModifiedTime: info.ModTime()})
	}

	// Timestamped names break ties when uploads land within one mtime tick
	sort.Slice(files, func(i, j int) bool {
		if files[i].ModifiedTime.Equal(files[j].ModifiedTime) {
			return files[i].Name > files[j].Name
		}
		return files[i].ModifiedTime.After(files[j].ModifiedTime)
	})

	return files, nil
}

// Download returns the contents of the file with the given ID.
func (d *DirProvider) Download(ctx context.Context, fileID string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	index, err := d.loadIndex()
	if err != nil {
		return nil, err
	}

	entry, ok := index[fileID]
	if !ok {
		return nil, ErrFileNotFound
	}

	data, err := os.ReadFile(filepath.Join(d.base, entry.Folder, entry.Name))
	if os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	return data, nil
}

func (d *DirProvider) loadIndex() (map[string]indexEntry, error) {
	data, err := os.ReadFile(filepath.Join(d.base, indexFile))
	if os.IsNotExist(err) {
		return map[string]indexEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup index: %w", err)
	}

	index := map[string]indexEntry{}
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse backup index: %w", err)
	}

	return index, nil
}

func (d *DirProvider) saveIndex(index map[string]indexEntry) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup index: %w", err)
	}

	path := filepath.Join(d.base, indexFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup index: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace backup index: %w", err)
	}

	return nil
}
