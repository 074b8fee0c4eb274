package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/enkonix/web/database"
	"github.com/enkonix/web/database/model"
	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/util/common"
	"github.com/enkonix/web/util/random"
	"github.com/enkonix/web/web/entity"
)

var defaultValueMap = map[string]string{
	"webListen":          "",
	"webDomain":          "",
	"webPort":            "8080",
	"webCertFile":        "",
	"webKeyFile":         "",
	"webBasePath":        "/",
	"secret":             random.Seq(32),
	"sessionMaxAge":      "60",
	"pageSize":           "50",
	"timeLocation":       "Asia/Kolkata",
	"auditRetentionDays": "90",
}

// SettingService reads and writes runtime settings stored in the settings
// table, falling back to the defaults above for keys never written.
type SettingService struct{}

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

func (s *SettingService) SetListen(ip string) error {
	return s.setString("webListen", ip)
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

// GetSecret returns the cookie-signing secret. The generated default is
// persisted on first read so sessions survive restarts.
func (s *SettingService) GetSecret() ([]byte, error) {
	secret, err := s.getString("secret")
	if secret == defaultValueMap["secret"] {
		if saveErr := s.saveSetting("secret", secret); saveErr != nil {
			logger.Warning("save secret failed:", saveErr)
		}
	}
	return []byte(secret), err
}

func (s *SettingService) GetBasePath() (string, error) {
	basePath, err := s.getString("webBasePath")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath, nil
}

func (s *SettingService) GetSessionMaxAge() (int, error) {
	return s.getInt("sessionMaxAge")
}

func (s *SettingService) GetPageSize() (int, error) {
	return s.getInt("pageSize")
}

func (s *SettingService) GetAuditRetentionDays() (int, error) {
	return s.getInt("auditRetentionDays")
}

func (s *SettingService) GetTimeLocation() (*time.Location, error) {
	l, err := s.getString("timeLocation")
	if err != nil {
		return nil, err
	}
	location, err := time.LoadLocation(l)
	if err != nil {
		defaultLocation := defaultValueMap["timeLocation"]
		location, err = time.LoadLocation(defaultLocation)
		logger.Errorf("Invalid time location: %v, using default location: %v", l, defaultLocation)
	}
	return location, err
}

// GetAllSetting collects every web setting for the admin settings endpoint.
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
	if allSetting.SessionMaxAge, err = s.GetSessionMaxAge(); err != nil {
		return nil, err
	}
	if allSetting.PageSize, err = s.GetPageSize(); err != nil {
		return nil, err
	}
	if allSetting.TimeLocation, err = s.getString("timeLocation"); err != nil {
		return nil, err
	}
	if allSetting.AuditRetentionDays, err = s.GetAuditRetentionDays(); err != nil {
		return nil, err
	}

	return allSetting, nil
}

// UpdateAllSetting validates and persists a full settings update. Changes to
// listen/port/base path take effect on the next server restart.
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
		s.setInt("sessionMaxAge", allSetting.SessionMaxAge),
		s.setInt("pageSize", allSetting.PageSize),
		s.setString("timeLocation", allSetting.TimeLocation),
		s.setInt("auditRetentionDays", allSetting.AuditRetentionDays),
	)
}

func (s *SettingService) ResetSettings() error {
	db := database.GetDB()
	return db.Where("1 = 1").Delete(model.Setting{}).Error
}
