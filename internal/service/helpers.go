package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/domain"
)

func requireName(kind, name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", fmt.Errorf("%w: %s name is required", domain.ErrInvalidInput, kind)
	}
	return n, nil
}

func normalizeSpotInput(in SpotInput) (SpotInput, error) {
	name, err := requireName("spot", in.Name)
	if err != nil {
		return in, err
	}
	in.Name = name
	if in.RoomType == "" {
		in.RoomType = domain.RoomOther
	}
	if !domain.ValidRoomTypes[string(in.RoomType)] {
		return in, fmt.Errorf("%w: unknown room type %q", domain.ErrInvalidInput, in.RoomType)
	}
	if err := in.Questionnaire.Validate(); err != nil {
		return in, err
	}
	in.Questionnaire = in.Questionnaire.Normalize()
	return in, nil
}

func validateTaskConfig(cfg domain.TaskConfig) error {
	for _, t := range domain.TaskTypes {
		s, _ := cfg.Get(t)
		if s.FrequencyDays <= 0 {
			return fmt.Errorf("%w: %s frequency must be positive, got %d", domain.ErrInvalidInput, t, s.FrequencyDays)
		}
	}
	return nil
}
