package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "context_banks.json"
	metaFileName  = "cache_meta.json"
)

// cacheMeta records when and from what the cache was written. The cache
// is fresh only while the workbook's mtime is unchanged.
type cacheMeta struct {
	ExcelModTime int64  `json:"excel_mtime_unix"`
	CachedAt     string `json:"cached_at"`
	NumContexts  int    `json:"num_contexts"`
}

// Load returns an indexed Bank for the workbook at excelPath, going
// through the JSON cache in cacheDir when it is still fresh. When the
// workbook does not exist the built-in seed tables are used instead.
func Load(excelPath, cacheDir string) (*Bank, error) {
	info, err := os.Stat(excelPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("context banks workbook not found, using built-in tables", "path", excelPath)
		return New(Seed()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat workbook: %w", err)
	}

	if tables, ok := loadCache(cacheDir, info.ModTime()); ok {
		slog.Info("context banks loaded from cache", "contexts", len(tables.Metadata))
		return New(tables), nil
	}

	tables, err := LoadWorkbook(excelPath)
	if err != nil {
		return nil, err
	}
	if err := writeCache(cacheDir, tables, info.ModTime()); err != nil {
		// A broken cache only costs the next load a workbook parse.
		slog.Warn("failed to write bank cache", "error", err)
	}
	return New(tables), nil
}

// loadCache returns the cached tables when the meta file matches the
// workbook's current modification time.
func loadCache(cacheDir string, excelModTime time.Time) (Tables, bool) {
	metaRaw, err := os.ReadFile(filepath.Join(cacheDir, metaFileName))
	if err != nil {
		return Tables{}, false
	}
	var meta cacheMeta
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		return Tables{}, false
	}
	if meta.ExcelModTime != excelModTime.Unix() {
		return Tables{}, false
	}

	raw, err := os.ReadFile(filepath.Join(cacheDir, cacheFileName))
	if err != nil {
		return Tables{}, false
	}
	var tables Tables
	if err := json.Unmarshal(raw, &tables); err != nil {
		return Tables{}, false
	}
	return tables, true
}

func writeCache(cacheDir string, tables Tables, excelModTime time.Time) error {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	raw, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tables: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cacheDir, cacheFileName), raw, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}

	meta := cacheMeta{
		ExcelModTime: excelModTime.Unix(),
		CachedAt:     time.Now().Format(time.RFC3339),
		NumContexts:  len(tables.Metadata),
	}
	metaRaw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache meta: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cacheDir, metaFileName), metaRaw, 0o644); err != nil {
		return fmt.Errorf("write cache meta: %w", err)
	}
	return nil
}
