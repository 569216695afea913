package service

import (
	"sync"

	"github.com/domysh/spesometro/database"
	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/util/random"
)

// secretKey is the fixed settings key the signing secret is persisted under.
const secretKey = "secret"

var (
	secretMu    sync.Mutex
	secretCache []byte
)

// SecretService lazily provisions the process-wide token signing secret.
// The secret is generated once per storage lifetime and cached in memory,
// so token signatures stay valid across requests within a process and all
// outstanding tokens are invalidated when storage is wiped.
type SecretService struct {
	settingService SettingService
}

// GetSecret returns the signing secret, creating and persisting it on the
// first call ever. When two processes race on first provisioning, the
// unique index on the settings key makes the second insert fail; the loser
// re-reads the winner's value.
func (s *SecretService) GetSecret() ([]byte, error) {
	secretMu.Lock()
	defer secretMu.Unlock()

	if secretCache != nil {
		return secretCache, nil
	}

	setting, err := s.settingService.getSetting(secretKey)
	if database.IsNotFound(err) {
		value := random.HexSeq(32)
		db := database.GetDB()
		createErr := db.Create(&model.Setting{Key: secretKey, Value: value}).Error
		if createErr != nil {
			// Lost the provisioning race: the stored value wins.
			setting, err = s.settingService.getSetting(secretKey)
			if err != nil {
				return nil, createErr
			}
			value = setting.Value
		}
		secretCache = []byte(value)
		return secretCache, nil
	} else if err != nil {
		return nil, err
	}

	secretCache = []byte(setting.Value)
	return secretCache, nil
}

// resetSecretCache drops the in-memory secret so the next GetSecret call
// re-reads or re-provisions it. Used when settings are wiped.
func resetSecretCache() {
	secretMu.Lock()
	defer secretMu.Unlock()
	secretCache = nil
}
