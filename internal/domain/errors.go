package domain

import "errors"

// Ошибки уровня домена. Всё остальное - ошибки инфраструктуры, оборачиваются через %w.
var (
	// ErrInvalidBirthDetails данные рождения не прошли валидацию, расчёт не начинался
	ErrInvalidBirthDetails = errors.New("invalid birth details")

	// ErrDateOutOfRange запрошенный момент вне допустимого диапазона эфемерид
	ErrDateOutOfRange = errors.New("date out of ephemeris range")

	// ErrUnsupportedConfiguration неизвестное значение настройки расчёта (ошибка программирования)
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrChartNotFound сохранённая карта не найдена
	ErrChartNotFound = errors.New("chart not found")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
