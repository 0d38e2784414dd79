package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

// AddResult reports what an add operation created.
type AddResult struct {
	Directory    string // project-root-relative
	ResolvedName string
	Files        []string // relative to Directory
	Note         string
	BarrelAction BarrelAction
}

// Add resolves a resource, refuses to overwrite an existing one, writes
// its directory and files, and updates the parent barrel where the
// resource kind carries one. Directory creation precedes file writes;
// the barrel update comes last.
func Add(projectRoot string, req arch.Request, cfg *config.Config) (*AddResult, error) {
	info, err := arch.Resolve(req, cfg)
	if err != nil {
		return nil, err
	}

	absDir := filepath.Join(projectRoot, filepath.FromSlash(info.Directory))

	// Type declarations live flat: the conflict unit is the file, not the
	// shared types directory.
	if req.Type == arch.TypeType {
		target := filepath.Join(absDir, info.Files[0])
		if _, err := os.Stat(target); err == nil {
			return nil, &ConflictError{Path: filepath.Join(info.Directory, info.Files[0])}
		}
	} else if _, err := os.Stat(absDir); err == nil {
		return nil, &ConflictError{Path: info.Directory}
	}

	contents := FileContents(req, info, cfg)
	for _, rel := range info.Files {
		target := filepath.Join(absDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(target, []byte(contents[rel]), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", rel, err)
		}
	}

	result := &AddResult{
		Directory:    info.Directory,
		ResolvedName: info.ResolvedName,
		Files:        info.Files,
		Note:         info.Note,
	}

	if barrelKind(req.Type) {
		action, err := UpdateBarrel(filepath.Dir(absDir), filepath.Base(absDir), cfg.ScriptExt())
		if err != nil {
			return nil, err
		}
		result.BarrelAction = action
	}

	return result, nil
}

// barrelKind reports whether the resource kind maintains a parent barrel.
// Types are flat files, api routes live in the app router, and features
// have no single parent barrel.
func barrelKind(t arch.ResourceType) bool {
	switch t {
	case arch.TypeType, arch.TypeAPI, arch.TypeFeature:
		return false
	}
	return true
}

// ScaffoldFolders creates the structure's folder set under projectRoot,
// returning the directories that did not previously exist.
func ScaffoldFolders(projectRoot string, s *arch.Structure) ([]string, error) {
	var created []string
	for _, dir := range s.Folders {
		abs := filepath.Join(projectRoot, filepath.FromSlash(dir))
		if _, err := os.Stat(abs); err == nil {
			continue
		}
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return created, fmt.Errorf("create %s: %w", dir, err)
		}
		created = append(created, dir)
	}
	return created, nil
}

// MissingFolders returns the structure folders absent from projectRoot.
func MissingFolders(projectRoot string, s *arch.Structure) []string {
	var missing []string
	for _, dir := range s.Folders {
		abs := filepath.Join(projectRoot, filepath.FromSlash(dir))
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			missing = append(missing, dir)
		}
	}
	return missing
}
