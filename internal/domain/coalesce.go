package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CoalesceStr returns the first non-blank string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ParseDaysOr parses a user-entered day count. Blank, non-numeric and
// non-positive input yields fallback instead of an error.
func ParseDaysOr(input string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// ParseNonNegativeDaysOr is ParseDaysOr but accepts zero.
func ParseNonNegativeDaysOr(input string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func parseEnum(kind, v string, valid map[string]bool) (string, error) {
	v = strings.TrimSpace(v)
	if !valid[v] {
		return "", fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, kind, v)
	}
	return v, nil
}

func ParseLightLevel(v string) (LightLevel, error) {
	s, err := parseEnum("light level", v, ValidLightLevels)
	return LightLevel(s), err
}

func ParseLightSource(v string) (LightSource, error) {
	s, err := parseEnum("light source", v, ValidLightSources)
	return LightSource(s), err
}

func ParseDirection(v string) (Direction, error) {
	s, err := parseEnum("direction", v, ValidDirections)
	return Direction(s), err
}

func ParseSunExposure(v string) (SunExposure, error) {
	s, err := parseEnum("sun exposure", v, ValidSunExposures)
	return SunExposure(s), err
}

func ParseWindowDistance(v string) (WindowDistance, error) {
	s, err := parseEnum("distance from window", v, ValidDistances)
	return WindowDistance(s), err
}

func ParseRoomType(v string) (RoomType, error) {
	s, err := parseEnum("room type", v, ValidRoomTypes)
	return RoomType(s), err
}

func ParseTaskType(v string) (TaskType, error) {
	s, err := parseEnum("task type", v, ValidTaskTypes)
	return TaskType(s), err
}

func ParseTaskCategory(v string) (TaskCategory, error) {
	s, err := parseEnum("task category", v, ValidTaskCategories)
	return TaskCategory(s), err
}
