package store

import (
	"database/sql"
	"fmt"
)

// 配置键
const (
	ConfigCurrentSession = "current_session" // 最近一次导入的财年标签
)

// GetConfig 获取配置项
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("config key not found: %s", key)
		}
		return "", err
	}
	return value, nil
}

// SetConfig 设置配置项
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

// GetCurrentSession 获取当前财年标签
func (s *Store) GetCurrentSession() (string, error) {
	return s.GetConfig(ConfigCurrentSession)
}

// SetCurrentSession 设置当前财年标签
func (s *Store) SetCurrentSession(session string) error {
	return s.SetConfig(ConfigCurrentSession, session)
}
