package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

// RenameResult reports a completed rename.
type RenameResult struct {
	OldPath string // project-root-relative
	NewPath string
}

// textExtensions are the file extensions whose contents the rename engine
// rewrites. Everything else is treated as binary and only renamed.
var textExtensions = map[string]bool{
	".ts": true, ".tsx": true, ".js": true, ".jsx": true,
	".css": true, ".scss": true, ".html": true, ".md": true, ".json": true,
}

// replacement is one ordered (old, new) token substitution.
type replacement struct {
	old string
	new string
}

// replacementPairs builds the ordered substitution list covering every
// name-derived identifier that can appear in file names or contents.
// Order is contractual: specific tokens come before the bare name so a
// generic pair never consumes a more specific token's substring. Pairs
// whose sides are equal are dropped.
func replacementPairs(oldName, newName string) []replacement {
	camelOld := arch.ToCamelCase(oldName)
	camelNew := arch.ToCamelCase(newName)

	candidates := []replacement{
		{"use" + oldName + "Store", "use" + newName + "Store"},
		{oldName + "Context", newName + "Context"},
		{oldName + "Provider", newName + "Provider"},
		{oldName + "Page", newName + "Page"},
		{"use" + oldName, "use" + newName},
		{camelOld + "Service", camelNew + "Service"},
		{camelOld, camelNew},
		{oldName, newName},
	}

	pairs := make([]replacement, 0, len(candidates))
	for _, c := range candidates {
		if c.old != c.new {
			pairs = append(pairs, c)
		}
	}
	return pairs
}

// applyPairs runs the substitutions sequentially over the evolving string.
func applyPairs(s string, pairs []replacement) string {
	for _, p := range pairs {
		s = strings.ReplaceAll(s, p.old, p.new)
	}
	return s
}

// Rename renames a resource in place: it rewrites every text file's
// contents and every file and directory name under the resource root
// using the ordered replacement pairs, renames the root directory, and
// patches the parent barrel. A failure after the preconditions leaves the
// tree partially renamed; there is no rollback.
func Rename(projectRoot string, req arch.Request, newName string, cfg *config.Config) (*RenameResult, error) {
	if err := arch.ValidateName(req.Name, req.Type); err != nil {
		return nil, err
	}
	if err := arch.ValidateName(newName, req.Type); err != nil {
		return nil, err
	}

	oldInfo, err := arch.Resolve(req, cfg)
	if err != nil {
		return nil, err
	}
	newReq := req
	newReq.Name = newName
	newInfo, err := arch.Resolve(newReq, cfg)
	if err != nil {
		return nil, err
	}

	pairs := replacementPairs(req.Name, newName)

	// Type declarations are flat files inside a shared directory, so the
	// rename unit is the file rather than a directory tree.
	if req.Type == arch.TypeType {
		return renameTypeFile(projectRoot, oldInfo, newInfo, pairs)
	}

	oldAbs := filepath.Join(projectRoot, filepath.FromSlash(oldInfo.Directory))
	newAbs := filepath.Join(projectRoot, filepath.FromSlash(newInfo.Directory))

	if info, err := os.Stat(oldAbs); err != nil || !info.IsDir() {
		return nil, &NotFoundError{Path: oldInfo.Directory}
	}
	if _, err := os.Stat(newAbs); err == nil {
		return nil, &ConflictError{Path: newInfo.Directory}
	}

	if err := renameTree(oldAbs, pairs); err != nil {
		return nil, err
	}

	if err := os.Rename(oldAbs, newAbs); err != nil {
		return nil, fmt.Errorf("rename %s to %s: %w", oldInfo.Directory, newInfo.Directory, err)
	}

	// Features have no single parent barrel to patch.
	if req.Type != arch.TypeFeature {
		oldBase := filepath.Base(oldAbs)
		newBase := filepath.Base(newAbs)
		if err := patchBarrel(filepath.Dir(newAbs), oldBase, newBase, cfg.ScriptExt()); err != nil {
			return nil, err
		}
	}

	return &RenameResult{OldPath: oldInfo.Directory, NewPath: newInfo.Directory}, nil
}

// renameTree walks dir depth-first, rewriting text file contents and
// renaming entries whose names change under the pairs. Directories are
// recursed into before being renamed so children are processed under
// their old paths.
func renameTree(dir string, pairs []replacement) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		oldPath := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := renameTree(oldPath, pairs); err != nil {
				return err
			}
		} else if textExtensions[filepath.Ext(entry.Name())] {
			if err := rewriteFile(oldPath, pairs); err != nil {
				return err
			}
		}

		newBase := applyPairs(entry.Name(), pairs)
		if newBase != entry.Name() {
			if err := os.Rename(oldPath, filepath.Join(dir, newBase)); err != nil {
				return fmt.Errorf("rename %s: %w", oldPath, err)
			}
		}
	}
	return nil
}

// rewriteFile applies the pairs to a file's contents, writing back only
// when something changed.
func rewriteFile(path string, pairs []replacement) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	content := string(data)
	updated := applyPairs(content, pairs)
	if updated == content {
		return nil
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	return nil
}

// renameTypeFile moves and rewrites a flat type declaration file.
func renameTypeFile(projectRoot string, oldInfo, newInfo *arch.PathInfo, pairs []replacement) (*RenameResult, error) {
	oldRel := oldInfo.Directory + "/" + oldInfo.Files[0]
	newRel := newInfo.Directory + "/" + newInfo.Files[0]
	oldAbs := filepath.Join(projectRoot, filepath.FromSlash(oldRel))
	newAbs := filepath.Join(projectRoot, filepath.FromSlash(newRel))

	if _, err := os.Stat(oldAbs); err != nil {
		return nil, &NotFoundError{Path: oldRel}
	}
	if _, err := os.Stat(newAbs); err == nil {
		return nil, &ConflictError{Path: newRel}
	}

	if err := rewriteFile(oldAbs, pairs); err != nil {
		return nil, err
	}
	if err := os.Rename(oldAbs, newAbs); err != nil {
		return nil, fmt.Errorf("rename %s to %s: %w", oldRel, newRel, err)
	}
	return &RenameResult{OldPath: oldRel, NewPath: newRel}, nil
}
