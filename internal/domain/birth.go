package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// BirthDetails данные рождения, неизменяемые после валидации
type BirthDetails struct {
	Name      string    `json:"name" db:"name"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"` // локальная дата и время рождения
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timezone  string    `json:"timezone" db:"timezone"` // IANA идентификатор, например Asia/Kolkata
	Gender    string    `json:"gender" db:"gender"`
}

// Validate проверяет данные рождения до любых вычислений
func (b *BirthDetails) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidBirthDetails)
	}
	if b.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth date is not set", ErrInvalidBirthDetails)
	}
	if math.IsNaN(b.Latitude) || math.IsInf(b.Latitude, 0) || b.Latitude < -90 || b.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v is out of range", ErrInvalidBirthDetails, b.Latitude)
	}
	if math.IsNaN(b.Longitude) || math.IsInf(b.Longitude, 0) || b.Longitude < -180 || b.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v is out of range", ErrInvalidBirthDetails, b.Longitude)
	}
	if b.Timezone == "" {
		return fmt.Errorf("%w: timezone is empty", ErrInvalidBirthDetails)
	}
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidBirthDetails, b.Timezone)
	}
	return nil
}

// UTC возвращает момент рождения в UTC с учётом таймзоны места рождения
func (b *BirthDetails) UTC() (time.Time, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidBirthDetails, b.Timezone)
	}
	local := time.Date(
		b.BirthDate.Year(), b.BirthDate.Month(), b.BirthDate.Day(),
		b.BirthDate.Hour(), b.BirthDate.Minute(), b.BirthDate.Second(), 0, loc,
	)
	return local.UTC(), nil
}

// AyanamsaSystem система аянамши
type AyanamsaSystem string

const (
	AyanamsaLahiri       AyanamsaSystem = "lahiri"
	AyanamsaRaman        AyanamsaSystem = "raman"
	AyanamsaKrishnamurti AyanamsaSystem = "krishnamurti"
)

func (a AyanamsaSystem) IsValid() bool {
	switch a {
	case AyanamsaLahiri, AyanamsaRaman, AyanamsaKrishnamurti:
		return true
	}
	return false
}

// HouseSystem система домов
type HouseSystem string

const (
	HouseWholeSign HouseSystem = "whole_sign"
	HouseEqual     HouseSystem = "equal"
	HousePlacidus  HouseSystem = "placidus"
)

func (h HouseSystem) IsValid() bool {
	switch h {
	case HouseWholeSign, HouseEqual, HousePlacidus:
		return true
	}
	return false
}

// NodeMode режим расчёта лунных узлов
type NodeMode string

const (
	NodeMean NodeMode = "mean"
	NodeTrue NodeMode = "true"
)

func (n NodeMode) IsValid() bool {
	return n == NodeMean || n == NodeTrue
}

// CalculationSettings параметры расчёта, передаются явно в каждый вызов
type CalculationSettings struct {
	Ayanamsa    AyanamsaSystem `json:"ayanamsa"`
	HouseSystem HouseSystem    `json:"house_system"`
	NodeMode    NodeMode       `json:"node_mode"`
}

// DefaultSettings настройки по умолчанию: Лахири, целые знаки, средний узел
func DefaultSettings() CalculationSettings {
	return CalculationSettings{
		Ayanamsa:    AyanamsaLahiri,
		HouseSystem: HouseWholeSign,
		NodeMode:    NodeMean,
	}
}

// Validate проверяет, что все перечисления настроек поддерживаются
func (s CalculationSettings) Validate() error {
	if !s.Ayanamsa.IsValid() {
		return fmt.Errorf("%w: ayanamsa %q", ErrUnsupportedConfiguration, s.Ayanamsa)
	}
	if !s.HouseSystem.IsValid() {
		return fmt.Errorf("%w: house system %q", ErrUnsupportedConfiguration, s.HouseSystem)
	}
	if !s.NodeMode.IsValid() {
		return fmt.Errorf("%w: node mode %q", ErrUnsupportedConfiguration, s.NodeMode)
	}
	return nil
}
