package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

// Remove deletes a resource located through the resolver. The parent
// barrel is left untouched; only add and rename maintain barrels.
func Remove(projectRoot string, req arch.Request, cfg *config.Config) (string, error) {
	info, err := arch.Resolve(req, cfg)
	if err != nil {
		return "", err
	}

	// Type declarations are flat files, not directories.
	if req.Type == arch.TypeType {
		rel := info.Directory + "/" + info.Files[0]
		abs := filepath.Join(projectRoot, filepath.FromSlash(rel))
		if _, err := os.Stat(abs); err != nil {
			return "", &NotFoundError{Path: rel}
		}
		if err := os.Remove(abs); err != nil {
			return "", fmt.Errorf("remove %s: %w", rel, err)
		}
		return rel, nil
	}

	abs := filepath.Join(projectRoot, filepath.FromSlash(info.Directory))
	if fi, err := os.Stat(abs); err != nil || !fi.IsDir() {
		return "", &NotFoundError{Path: info.Directory}
	}
	if err := os.RemoveAll(abs); err != nil {
		return "", fmt.Errorf("remove %s: %w", info.Directory, err)
	}
	return info.Directory, nil
}
