// Package service implements the business logic of the spesometro panel:
// authentication, access control, user administration, board aggregates,
// settings and server status.
package service

import (
	"strconv"
	"time"

	"github.com/domysh/spesometro/database"
	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/util/common"
	"github.com/domysh/spesometro/web/entity"
)

var defaultValueMap = map[string]string{
	"webListen":        "",
	"webDomain":        "",
	"webPort":          "8080",
	"webCertFile":      "",
	"webKeyFile":       "",
	"webBasePath":      "/",
	"pageSize":         "50",
	"timeLocation":     "Europe/Rome",
	"tokenExpiryHours": "3",
}

type SettingService struct{}

func (s *SettingService) GetAllSetting() (*entity.AllSetting, error) {
	allSetting := &entity.AllSetting{}
	var err error

	if allSetting.WebListen, err = s.GetListen(); err != nil {
		return nil, err
	}
	if allSetting.WebDomain, err = s.GetWebDomain(); err != nil {
		return nil, err
	}
	if allSetting.WebPort, err = s.GetPort(); err != nil {
		return nil, err
	}
	if allSetting.WebCertFile, err = s.GetCertFile(); err != nil {
		return nil, err
	}
	if allSetting.WebKeyFile, err = s.GetKeyFile(); err != nil {
		return nil, err
	}
	if allSetting.WebBasePath, err = s.GetBasePath(); err != nil {
		return nil, err
	}
	if allSetting.PageSize, err = s.GetPageSize(); err != nil {
		return nil, err
	}
	if allSetting.TimeLocation, err = s.getString("timeLocation"); err != nil {
		return nil, err
	}
	if allSetting.TokenExpiryHours, err = s.getInt("tokenExpiryHours"); err != nil {
		return nil, err
	}

	return allSetting, nil
}

func (s *SettingService) UpdateAllSetting(allSetting *entity.AllSetting) error {
	if err := allSetting.CheckValid(); err != nil {
		return err
	}
	return common.Combine(
		s.setString("webListen", allSetting.WebListen),
		s.setString("webDomain", allSetting.WebDomain),
		s.setInt("webPort", allSetting.WebPort),
		s.setString("webCertFile", allSetting.WebCertFile),
		s.setString("webKeyFile", allSetting.WebKeyFile),
		s.setString("webBasePath", allSetting.WebBasePath),
		s.setInt("pageSize", allSetting.PageSize),
		s.setString("timeLocation", allSetting.TimeLocation),
		s.setInt("tokenExpiryHours", allSetting.TokenExpiryHours),
	)
}

// ResetSettings drops every stored setting, including the signing secret,
// which invalidates all outstanding session tokens.
func (s *SettingService) ResetSettings() error {
	db := database.GetDB()
	err := db.Where("1 = 1").Delete(model.Setting{}).Error
	if err != nil {
		return err
	}
	resetSecretCache()
	return nil
}

func (s *SettingService) getSetting(key string) (*model.Setting, error) {
	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	setting, err := s.getSetting(key)
	db := database.GetDB()
	if database.IsNotFound(err) {
		return db.Create(&model.Setting{
			Key:   key,
			Value: value,
		}).Error
	} else if err != nil {
		return err
	}
	setting.Key = key
	setting.Value = value
	return db.Save(setting).Error
}

func (s *SettingService) getString(key string) (string, error) {
	setting, err := s.getSetting(key)
	if database.IsNotFound(err) {
		value, ok := defaultValueMap[key]
		if !ok {
			return "", common.NewErrorf("key <%v> not in defaultValueMap", key)
		}
		return value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) setString(key string, value string) error {
	return s.saveSetting(key, value)
}

func (s *SettingService) getInt(key string) (int, error) {
	str, err := s.getString(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(str)
}

func (s *SettingService) setInt(key string, value int) error {
	return s.setString(key, strconv.Itoa(value))
}

func (s *SettingService) GetListen() (string, error) {
	return s.getString("webListen")
}

func (s *SettingService) GetWebDomain() (string, error) {
	return s.getString("webDomain")
}

func (s *SettingService) GetPort() (int, error) {
	return s.getInt("webPort")
}

func (s *SettingService) SetPort(port int) error {
	return s.setInt("webPort", port)
}

func (s *SettingService) GetCertFile() (string, error) {
	return s.getString("webCertFile")
}

func (s *SettingService) GetKeyFile() (string, error) {
	return s.getString("webKeyFile")
}

func (s *SettingService) GetBasePath() (string, error) {
	basePath, err := s.getString("webBasePath")
	if err != nil {
		return "", err
	}
	if basePath == "" {
		basePath = "/"
	}
	if basePath[0] != '/' {
		basePath = "/" + basePath
	}
	if basePath[len(basePath)-1] != '/' {
		basePath += "/"
	}
	return basePath, nil
}

func (s *SettingService) GetPageSize() (int, error) {
	return s.getInt("pageSize")
}

func (s *SettingService) GetTimeLocation() (*time.Location, error) {
	location, err := s.getString("timeLocation")
	if err != nil {
		return nil, err
	}
	return time.LoadLocation(location)
}

// GetTokenExpiry returns the session token lifetime.
func (s *SettingService) GetTokenExpiry() (time.Duration, error) {
	hours, err := s.getInt("tokenExpiryHours")
	if err != nil {
		return 0, err
	}
	return time.Duration(hours) * time.Hour, nil
}
