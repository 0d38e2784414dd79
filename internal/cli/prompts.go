package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

// ErrCancelled reports that the user aborted an interactive prompt.
var ErrCancelled = errors.New("cancelled")

// newWizardTheme creates a huh.Theme with the forma palette.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}

// runForm executes a single-group form, mapping user aborts to ErrCancelled.
func runForm(group *huh.Group) error {
	form := huh.NewForm(group).
		WithTheme(newWizardTheme()).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

// selectOptions builds huh options with display labels for enum values.
func selectOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(arch.DisplayName(v), v)
	}
	return opts
}

// runInitWizard asks for each unset configuration field in turn. Each
// question runs as its own form so a terminal resize mid-wizard cannot
// scramble the remaining groups.
func runInitWizard(cfg *config.Config) error {
	if cfg.Framework == "" {
		sel := huh.NewSelect[string]().
			Title("Framework").
			Description("Determines whether paths are rooted at src/ or the project root.").
			Options(selectOptions(config.Frameworks)...).
			Value(&cfg.Framework)
		if err := runForm(huh.NewGroup(sel)); err != nil {
			return err
		}
	}

	if cfg.Pattern == "" {
		sel := huh.NewSelect[string]().
			Title("Architecture pattern").
			Description("Selects the folder structure and resource placement rules.").
			Options(selectOptions(config.Patterns)...).
			Value(&cfg.Pattern)
		if err := runForm(huh.NewGroup(sel)); err != nil {
			return err
		}
	}

	if cfg.Language == "" {
		sel := huh.NewSelect[string]().
			Title("Language").
			Options(selectOptions(config.Languages)...).
			Value(&cfg.Language)
		if err := runForm(huh.NewGroup(sel)); err != nil {
			return err
		}
	}

	if cfg.Styling == "" {
		sel := huh.NewSelect[string]().
			Title("Styling").
			Description("Extension used for generated style modules.").
			Options(selectOptions(config.Stylings)...).
			Value(&cfg.Styling)
		if err := runForm(huh.NewGroup(sel)); err != nil {
			return err
		}
	}

	confirm := huh.NewConfirm().
		Title("Generate test files alongside resources?").
		Value(&cfg.WithTests)
	if err := runForm(huh.NewGroup(confirm)); err != nil {
		return err
	}

	if cfg.Framework == config.FrameworkNextJS {
		client := huh.NewConfirm().
			Title("Add 'use client' to generated components by default?").
			Description("Contexts always get the directive regardless of this setting.").
			Value(&cfg.UseClient)
		if err := runForm(huh.NewGroup(client)); err != nil {
			return err
		}
	}

	return nil
}

// promptAtomicLevel asks for the component level under atomic-design.
func promptAtomicLevel(framework string) (string, error) {
	levels := arch.AtomicLevels(framework)
	opts := make([]huh.Option[string], len(levels))
	for i, l := range levels {
		opts[i] = huh.NewOption(string(l), string(l))
	}

	var level string
	sel := huh.NewSelect[string]().
		Title("Atomic level").
		Description("Where in the atomic hierarchy this component belongs.").
		Options(opts...).
		Value(&level)
	if err := runForm(huh.NewGroup(sel)); err != nil {
		return "", err
	}
	return level, nil
}

// promptConfirmRemoval gates destructive removal behind a yes/no answer.
func promptConfirmRemoval(target string) (bool, error) {
	confirmed := false
	confirm := huh.NewConfirm().
		Title("Remove " + target + "?").
		Description("The directory and all files inside it will be deleted.").
		Affirmative("Remove").
		Negative("Keep").
		Value(&confirmed)
	if err := runForm(huh.NewGroup(confirm)); err != nil {
		return false, err
	}
	return confirmed, nil
}
