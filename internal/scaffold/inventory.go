package scaffold

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

// InventoryEntry is one resource found on disk. The filesystem is the
// sole source of truth: there is no index to consult or update.
type InventoryEntry struct {
	Type arch.ResourceType
	Name string
	Path string // project-root-relative
}

// Inventory walks the structure's directories and returns the resources
// present on disk, grouped in resource-type display order. Directories
// that do not exist yet contribute nothing.
func Inventory(projectRoot string, cfg *config.Config) []InventoryEntry {
	s := arch.StructureFor(cfg)
	var entries []InventoryEntry

	add := func(t arch.ResourceType, name, rel string) {
		entries = append(entries, InventoryEntry{Type: t, Name: name, Path: rel})
	}

	for _, dir := range s.ComponentDirs() {
		for _, name := range subdirs(projectRoot, dir) {
			add(arch.TypeComponent, name, path.Join(dir, name))
		}
	}

	for _, t := range []arch.ResourceType{arch.TypeHook, arch.TypePage, arch.TypeService, arch.TypeContext, arch.TypeStore, arch.TypeFeature} {
		dir := s.Dir(t)
		for _, name := range subdirs(projectRoot, dir) {
			if t == arch.TypePage && cfg.Framework == config.FrameworkNextJS && name == "api" {
				continue
			}
			add(t, name, path.Join(dir, name))
		}
	}

	typeDir := s.Dir(arch.TypeType)
	suffix := ".types." + cfg.ScriptExt()
	for _, name := range dirFiles(projectRoot, typeDir) {
		if strings.HasSuffix(name, suffix) {
			add(arch.TypeType, strings.TrimSuffix(name, "."+cfg.ScriptExt()), path.Join(typeDir, name))
		}
	}

	if cfg.Framework == config.FrameworkNextJS {
		apiDir := s.Dir(arch.TypeAPI)
		for _, name := range subdirs(projectRoot, apiDir) {
			add(arch.TypeAPI, name, path.Join(apiDir, name))
		}
	}

	return entries
}

// subdirs lists the immediate subdirectory names of a project-relative dir.
func subdirs(projectRoot, rel string) []string {
	items, err := os.ReadDir(filepath.Join(projectRoot, filepath.FromSlash(rel)))
	if err != nil {
		return nil
	}
	var names []string
	for _, item := range items {
		if item.IsDir() {
			names = append(names, item.Name())
		}
	}
	return names
}

// dirFiles lists the immediate regular file names of a project-relative dir.
func dirFiles(projectRoot, rel string) []string {
	items, err := os.ReadDir(filepath.Join(projectRoot, filepath.FromSlash(rel)))
	if err != nil {
		return nil
	}
	var names []string
	for _, item := range items {
		if !item.IsDir() {
			names = append(names, item.Name())
		}
	}
	return names
}
