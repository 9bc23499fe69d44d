package keystore

// Ключи локального хранилища секретов.
const (
	// KeyAppPassword — локальный пароль приложения; отсутствие = не установлен.
	KeyAppPassword = "appPassword"
	// KeyFaceLockEnabled — флаг биометрической блокировки, "true"/"false".
	KeyFaceLockEnabled = "faceLockEnabled"
	// KeyOnboardingComplete — флаг пройденного онбординга.
	KeyOnboardingComplete = "onboarding_complete"
)

// Keystore — порт защищённого локального хранилища строк.
// Значения никогда не передаются на сервер.
type Keystore interface {
	// Get возвращает значение ключа; второй результат — присутствие ключа.
	Get(key string) (string, bool, error)

	// Set сохраняет значение ключа, перезаписывая существующее.
	Set(key, value string) error

	// Delete удаляет ключ. Отсутствующий ключ — не ошибка.
	Delete(key string) error
}
