package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/spf13/cobra"
)

// taskFlags collects schedule changes: --task TYPE[=DAYS] enables a type,
// --skip TYPE disables it.
type taskFlags struct {
	enable  []string
	disable []string
}

func (f *taskFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.enable, "task", nil, "Enable a task type, optionally with a frequency: misting=3 (repeatable)")
	cmd.Flags().StringArrayVar(&f.disable, "skip", nil, "Disable a task type (repeatable)")
}

func (f *taskFlags) empty() bool {
	return len(f.enable) == 0 && len(f.disable) == 0
}

// apply overlays the flags onto cfg.
func (f *taskFlags) apply(cfg *domain.TaskConfig) error {
	for _, raw := range f.enable {
		name, days, hasDays := strings.Cut(raw, "=")
		typ, err := domain.ParseTaskType(name)
		if err != nil {
			return err
		}
		s, _ := cfg.Get(typ)
		s.Enabled = true
		if hasDays {
			n, err := strconv.Atoi(strings.TrimSpace(days))
			if err != nil || n <= 0 {
				return fmt.Errorf("%w: frequency for %s must be a positive number of days, got %q", domain.ErrInvalidInput, typ, days)
			}
			s.FrequencyDays = n
		}
		if err := cfg.Set(typ, s); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	for _, name := range f.disable {
		typ, err := domain.ParseTaskType(name)
		if err != nil {
			return err
		}
		s, _ := cfg.Get(typ)
		s.Enabled = false
		if err := cfg.Set(typ, s); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	return nil
}
