package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BarrelAction reports what UpdateBarrel did.
type BarrelAction string

// Barrel update outcomes.
const (
	BarrelCreated BarrelAction = "created"
	BarrelUpdated BarrelAction = "updated"
	BarrelSkipped BarrelAction = "skipped"
)

// UpdateBarrel idempotently ensures parentDir's index barrel re-exports
// resourceName. It creates the barrel when absent, appends the export line
// when missing, and does nothing when an export for resourceName is
// already present. Repeated calls never duplicate a line.
func UpdateBarrel(parentDir, resourceName, scriptExt string) (BarrelAction, error) {
	barrelPath := filepath.Join(parentDir, "index."+scriptExt)
	line := fmt.Sprintf("export { default as %s } from './%s';\n", resourceName, resourceName)

	data, err := os.ReadFile(barrelPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("read barrel %s: %w", barrelPath, err)
		}
		if err := os.WriteFile(barrelPath, []byte(line), 0o644); err != nil {
			return "", fmt.Errorf("create barrel %s: %w", barrelPath, err)
		}
		return BarrelCreated, nil
	}

	content := string(data)
	if strings.Contains(content, "'./"+resourceName+"'") || strings.Contains(content, "as "+resourceName+" }") {
		return BarrelSkipped, nil
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += line
	if err := os.WriteFile(barrelPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("update barrel %s: %w", barrelPath, err)
	}
	return BarrelUpdated, nil
}

// patchBarrel rewrites references to oldBase in parentDir's barrel file so
// they point at newBase. Missing barrels are left alone; nothing is created.
func patchBarrel(parentDir, oldBase, newBase, scriptExt string) error {
	barrelPath := filepath.Join(parentDir, "index."+scriptExt)
	data, err := os.ReadFile(barrelPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read barrel %s: %w", barrelPath, err)
	}

	content := string(data)
	updated := strings.ReplaceAll(content, "from './"+oldBase+"'", "from './"+newBase+"'")
	updated = strings.ReplaceAll(updated, "as "+oldBase+" }", "as "+newBase+" }")
	if updated == content {
		return nil
	}
	if err := os.WriteFile(barrelPath, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("patch barrel %s: %w", barrelPath, err)
	}
	return nil
}
